package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=quiz.go -destination=mock_quiz.go -package=services

const quizEntity = "quiz"

// QuizReader defines read operations for quiz rows.
type QuizReader interface {
	GetByID(ctx context.Context, id int64) (*models.QuizDB, error)
	GetAll(ctx context.Context) ([]models.QuizDB, error)
}

// QuizWriter defines write operations for quiz rows.
type QuizWriter interface {
	Insert(ctx context.Context, quiz *models.QuizDB) (int64, error)
	Update(ctx context.Context, quiz *models.QuizDB) error
	Delete(ctx context.Context, id int64) error
}

// QuestionReader defines read operations for questions.
type QuestionReader interface {
	GetByQuizID(ctx context.Context, quizID int64) ([]models.QuestionDB, error)
}

// QuestionWriter defines write operations for questions.
type QuestionWriter interface {
	Insert(ctx context.Context, question *models.QuestionDB) (int64, error)
	Update(ctx context.Context, question *models.QuestionDB) error
	Delete(ctx context.Context, id int64) error
}

// UserGetter looks up quiz creators.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// QuizService handles quiz CRUD and the creator check.
type QuizService struct {
	quizReader     QuizReader
	quizWriter     QuizWriter
	questionReader QuestionReader
	questionWriter QuestionWriter
	users          UserGetter
	audit          AuditPublisher
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizReader QuizReader,
	quizWriter QuizWriter,
	questionReader QuestionReader,
	questionWriter QuestionWriter,
	users UserGetter,
	audit AuditPublisher,
) *QuizService {
	return &QuizService{
		quizReader:     quizReader,
		quizWriter:     quizWriter,
		questionReader: questionReader,
		questionWriter: questionWriter,
		users:          users,
		audit:          audit,
	}
}

// List returns every quiz with its creator and questions, ordered by ID.
func (s *QuizService) List(ctx context.Context) ([]models.Quiz, error) {
	rows, err := s.quizReader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list quizzes", "error", err)
		return nil, err
	}

	creators := make(map[int64]*models.UserDB)
	quizzes := make([]models.Quiz, 0, len(rows))
	for i := range rows {
		quiz, err := s.assemble(ctx, &rows[i], creators)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, *quiz)
	}
	return quizzes, nil
}

// Get returns a single quiz or apperror.ErrNotFound.
func (s *QuizService) Get(ctx context.Context, id int64) (*models.Quiz, error) {
	row, err := s.quizReader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, row, make(map[int64]*models.UserDB))
}

// Create stores a quiz with its questions and returns the quiz ID.
func (s *QuizService) Create(ctx context.Context, user *models.UserDB, in models.QuizInput) (int64, error) {
	if err := ValidateQuizInput(in); err != nil {
		return 0, err
	}

	quiz := &models.QuizDB{
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   user.ID,
	}
	id, err := s.quizWriter.Insert(ctx, quiz)
	if err != nil {
		logger.Log.Errorw("failed to save quiz", "user_id", user.ID, "error", err)
		return 0, err
	}

	for i, qi := range in.Questions {
		question := newQuestion(id, i, qi)
		if _, err := s.questionWriter.Insert(ctx, question); err != nil {
			logger.Log.Errorw("failed to save question", "quiz_id", id, "position", i, "error", err)
			return 0, err
		}
	}

	s.audit.Publish(ctx, user.Username, models.ActionQuizCreate, quizEntity, id)

	return id, nil
}

// Update replaces name, description and questions of a quiz owned by user.
// Questions whose ID belongs to the quiz are edited in place, the rest are
// inserted, and stored questions left out of the input are removed.
func (s *QuizService) Update(ctx context.Context, user *models.UserDB, id int64, in models.QuizInput) error {
	quiz, err := s.authorize(ctx, user, id)
	if err != nil {
		return err
	}
	if err := ValidateQuizInput(in); err != nil {
		return err
	}

	quiz.Name = in.Name
	quiz.Description = in.Description
	if err := s.quizWriter.Update(ctx, quiz); err != nil {
		logger.Log.Errorw("failed to update quiz", "quiz_id", id, "error", err)
		return err
	}

	stored, err := s.questionReader.GetByQuizID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load questions", "quiz_id", id, "error", err)
		return err
	}
	unreferenced := make(map[int64]bool, len(stored))
	for _, q := range stored {
		unreferenced[q.ID] = true
	}

	for i, qi := range in.Questions {
		question := newQuestion(id, i, qi)
		if qi.ID != nil && unreferenced[*qi.ID] {
			delete(unreferenced, *qi.ID)
			question.ID = *qi.ID
			err = s.questionWriter.Update(ctx, question)
		} else {
			_, err = s.questionWriter.Insert(ctx, question)
		}
		if err != nil {
			logger.Log.Errorw("failed to save question", "quiz_id", id, "position", i, "error", err)
			return err
		}
	}

	for _, q := range stored {
		if !unreferenced[q.ID] {
			continue
		}
		if err := s.questionWriter.Delete(ctx, q.ID); err != nil {
			logger.Log.Errorw("failed to delete question", "quiz_id", id, "question_id", q.ID, "error", err)
			return err
		}
	}

	s.audit.Publish(ctx, user.Username, models.ActionQuizUpdate, quizEntity, id)

	return nil
}

// Delete removes a quiz owned by user together with its questions.
func (s *QuizService) Delete(ctx context.Context, user *models.UserDB, id int64) error {
	if _, err := s.authorize(ctx, user, id); err != nil {
		return err
	}

	if err := s.quizWriter.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete quiz", "quiz_id", id, "error", err)
		return err
	}

	s.audit.Publish(ctx, user.Username, models.ActionQuizDelete, quizEntity, id)

	return nil
}

// authorize loads the quiz and checks that user created it.
func (s *QuizService) authorize(ctx context.Context, user *models.UserDB, id int64) (*models.QuizDB, error) {
	quiz, err := s.quizReader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz.CreatedBy != user.ID {
		logger.Log.Infow("quiz edit refused", "quiz_id", id, "user_id", user.ID, "created_by", quiz.CreatedBy)
		return nil, apperror.ErrForbidden
	}
	return quiz, nil
}

func (s *QuizService) assemble(ctx context.Context, row *models.QuizDB, creators map[int64]*models.UserDB) (*models.Quiz, error) {
	creator, ok := creators[row.CreatedBy]
	if !ok {
		var err error
		creator, err = s.users.GetByID(ctx, row.CreatedBy)
		if err != nil {
			logger.Log.Errorw("failed to load quiz creator", "quiz_id", row.ID, "user_id", row.CreatedBy, "error", err)
			return nil, err
		}
		creators[row.CreatedBy] = creator
	}

	questions, err := s.questionReader.GetByQuizID(ctx, row.ID)
	if err != nil {
		logger.Log.Errorw("failed to load questions", "quiz_id", row.ID, "error", err)
		return nil, err
	}

	return &models.Quiz{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		CreatedBy:   creator,
		Questions:   questions,
	}, nil
}

// ValidateQuizInput reports every missing required field at once.
func ValidateQuizInput(in models.QuizInput) error {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if len(in.Questions) == 0 {
		missing = append(missing, "questions")
	}
	for i, q := range in.Questions {
		if q.Question == "" {
			missing = append(missing, fmt.Sprintf("questions[%d].question", i))
		}
		if q.Answer == "" {
			missing = append(missing, fmt.Sprintf("questions[%d].answer", i))
		}
	}
	if len(missing) > 0 {
		return apperror.NewValidationError(missing...)
	}
	return nil
}

func newQuestion(quizID int64, position int, in models.QuestionInput) *models.QuestionDB {
	options := models.Options(in.Options)
	if options == nil {
		options = models.Options{}
	}
	return &models.QuestionDB{
		QuizID:   quizID,
		Position: position,
		Question: in.Question,
		Answer:   in.Answer,
		Options:  options,
	}
}
