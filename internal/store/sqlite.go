package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskwise/internal/models"
)

// SQLite backs the Store contract with a gorm-managed sqlite database.
// The default DSN is ":memory:", which keeps data scoped to the process the
// same way the in-memory store does; a file path is a deployment choice.
//
// Ids come from the store's own counter rather than sqlite's rowid, so the
// no-reuse guarantee holds regardless of what the database would pick.
type SQLite struct {
	db *gorm.DB

	mu     sync.Mutex
	lastID uint
}

// DefaultDSN keeps task data scoped to the process lifetime.
const DefaultDSN = ":memory:"

// OpenSQLite opens (or creates) the database at dsn and runs migrations.
func OpenSQLite(dsn string) (*SQLite, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open task database: %w", err)
	}

	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return nil, fmt.Errorf("failed to migrate task database: %w", err)
	}

	s := &SQLite{db: db}

	// Seed the counter past any id already present so restarts against a
	// file-backed database never hand out a live id again.
	var maxID uint
	if err := db.Model(&models.Task{}).Select("coalesce(max(id), 0)").Scan(&maxID).Error; err != nil {
		return nil, fmt.Errorf("failed to read max task id: %w", err)
	}
	s.lastID = maxID

	return s, nil
}

// Close releases the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLite) List() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := s.db.Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLite) Get(id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task #%d: %w", id, err)
	}
	return &task, nil
}

func (s *SQLite) Create(draft models.Draft) (*models.Task, error) {
	normalized, err := normalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastID++
	id := s.lastID
	s.mu.Unlock()

	now := time.Now()
	task := models.Task{
		ID:               id,
		CreatedAt:        now,
		UpdatedAt:        now,
		Title:            normalized.Title,
		Description:      normalized.Description,
		Priority:         normalized.Priority,
		EstimatedMinutes: normalized.EstimatedMinutes,
		Completed:        normalized.Completed,
		DueDate:          normalized.DueDate,
	}

	if err := s.db.Create(&task).Error; err != nil {
		// The burned id stays burned; uniqueness matters, gaps do not.
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

func (s *SQLite) Update(id uint, draft models.Draft) (*models.Task, error) {
	normalized, err := normalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	task.Title = normalized.Title
	task.Description = normalized.Description
	task.Priority = normalized.Priority
	task.EstimatedMinutes = normalized.EstimatedMinutes
	task.Completed = normalized.Completed
	task.DueDate = normalized.DueDate
	task.UpdatedAt = time.Now()

	if err := s.db.Save(task).Error; err != nil {
		return nil, fmt.Errorf("failed to update task #%d: %w", id, err)
	}
	return task, nil
}

func (s *SQLite) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.Task{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete task #%d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *SQLite) Pending() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := s.db.Where("completed = ?", false).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLite) Suggest() ([]models.Task, error) {
	// The null-due-last tie-break lives in SortSuggested; keeping the
	// ordering in one place means both backends rank identically.
	pending, err := s.Pending()
	if err != nil {
		return nil, err
	}
	SortSuggested(pending)
	return pending, nil
}

func (s *SQLite) Search(query string) ([]models.Task, error) {
	// Filtered in Go instead of LIKE so %, _ and \ in the query stay
	// literal, matching the in-memory backend exactly.
	tasks, err := s.List()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Task, 0)
	for _, t := range tasks {
		if matchesTitle(t, query) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
