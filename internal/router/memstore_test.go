package router_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

// In-memory stand-ins for the Postgres repositories.

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.UserDB
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[int64]models.UserDB)}
}

func (s *memUsers) GetByID(_ context.Context, id int64) (*models.UserDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &u, nil
}

func (s *memUsers) GetByUsername(_ context.Context, username string) (*models.UserDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (s *memUsers) Insert(_ context.Context, username, passwordHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Username == username {
			return 0, apperror.ErrConflict
		}
	}
	s.nextID++
	s.byID[s.nextID] = models.UserDB{ID: s.nextID, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	return s.nextID, nil
}

type memQuizzes struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.QuizDB
	onDel  func(quizID int64)
}

func newMemQuizzes() *memQuizzes {
	return &memQuizzes{byID: make(map[int64]models.QuizDB)}
}

func (s *memQuizzes) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *memQuizzes) GetByID(_ context.Context, id int64) (*models.QuizDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.byID[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &q, nil
}

func (s *memQuizzes) GetAll(_ context.Context) ([]models.QuizDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.QuizDB, 0, len(s.byID))
	for _, q := range s.byID {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memQuizzes) Insert(_ context.Context, quiz *models.QuizDB) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	quiz.ID = s.nextID
	quiz.CreatedAt = time.Now().UTC()
	s.byID[quiz.ID] = *quiz
	return quiz.ID, nil
}

func (s *memQuizzes) Update(_ context.Context, quiz *models.QuizDB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored, ok := s.byID[quiz.ID]; ok {
		stored.Name = quiz.Name
		stored.Description = quiz.Description
		s.byID[quiz.ID] = stored
	}
	return nil
}

func (s *memQuizzes) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	delete(s.byID, id)
	s.mu.Unlock()
	if s.onDel != nil {
		s.onDel(id)
	}
	return nil
}

type memQuestions struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.QuestionDB
}

func newMemQuestions() *memQuestions {
	return &memQuestions{byID: make(map[int64]models.QuestionDB)}
}

func (s *memQuestions) GetByQuizID(_ context.Context, quizID int64) ([]models.QuestionDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.QuestionDB{}
	for _, q := range s.byID {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *memQuestions) Insert(_ context.Context, q *models.QuestionDB) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	q.ID = s.nextID
	s.byID[q.ID] = *q
	return q.ID, nil
}

func (s *memQuestions) Update(_ context.Context, q *models.QuestionDB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[q.ID]; ok {
		s.byID[q.ID] = *q
	}
	return nil
}

func (s *memQuestions) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

func (s *memQuestions) deleteByQuiz(quizID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, q := range s.byID {
		if q.QuizID == quizID {
			delete(s.byID, id)
		}
	}
}
