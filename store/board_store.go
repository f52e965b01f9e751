package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"localkanban/model"
	"localkanban/storage"
)

// BoardStore owns the per-user boards. Every mutator reads the whole board
// map, mutates in memory and writes the whole map back, so no partial-write
// state is ever observable.
type BoardStore struct {
	mu      sync.Mutex
	storage *storage.Store
}

func NewBoardStore(st *storage.Store) *BoardStore {
	return &BoardStore{storage: st}
}

func defaultColumns() []model.Column {
	return []model.Column{
		{ID: uuid.NewString(), Title: "To Do", Order: 0},
		{ID: uuid.NewString(), Title: "In Progress", Order: 1},
		{ID: uuid.NewString(), Title: "Done", Order: 2},
	}
}

func (s *BoardStore) load(ctx context.Context) (map[string]model.Board, error) {
	boards := map[string]model.Board{}
	if err := s.storage.Read(ctx, storage.KeyBoards, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// ensure returns the user's board, lazily seeding and persisting the
// default columns when absent. It never overwrites an existing board.
func (s *BoardStore) ensure(ctx context.Context, boards map[string]model.Board, userID string) (model.Board, error) {
	if board, ok := boards[userID]; ok {
		return board, nil
	}
	board := model.Board{Columns: defaultColumns(), Tasks: []model.Task{}}
	boards[userID] = board
	if err := s.storage.Write(ctx, storage.KeyBoards, boards); err != nil {
		return model.Board{}, err
	}
	return board, nil
}

// GetOrCreate returns the user's board, seeding the three default columns
// on first access. Idempotent.
func (s *BoardStore) GetOrCreate(ctx context.Context, userID string) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	board, err := s.ensure(ctx, boards, userID)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// AddColumn appends a column with order = current column count. Orders are
// never renumbered, so the sequence stays dense only until a deletion.
func (s *BoardStore) AddColumn(ctx context.Context, userID, title string) (*model.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	board, err := s.ensure(ctx, boards, userID)
	if err != nil {
		return nil, err
	}

	column := model.Column{
		ID:    uuid.NewString(),
		Title: title,
		Order: len(board.Columns),
	}
	board.Columns = append(board.Columns, column)
	boards[userID] = board

	if err := s.storage.Write(ctx, storage.KeyBoards, boards); err != nil {
		return nil, err
	}
	return &column, nil
}

// RenameColumn retitles a column; a missing column id is a no-op.
func (s *BoardStore) RenameColumn(ctx context.Context, userID, columnID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	board, err := s.ensure(ctx, boards, userID)
	if err != nil {
		return err
	}

	for i := range board.Columns {
		if board.Columns[i].ID == columnID {
			board.Columns[i].Title = title
			boards[userID] = board
			return s.storage.Write(ctx, storage.KeyBoards, boards)
		}
	}
	return nil
}

// DeleteColumn removes a column and cascades to every task referencing it.
// A missing column id is a no-op.
func (s *BoardStore) DeleteColumn(ctx context.Context, userID, columnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	board, err := s.ensure(ctx, boards, userID)
	if err != nil {
		return err
	}

	columns := make([]model.Column, 0, len(board.Columns))
	for _, column := range board.Columns {
		if column.ID != columnID {
			columns = append(columns, column)
		}
	}
	tasks := make([]model.Task, 0, len(board.Tasks))
	for _, task := range board.Tasks {
		if task.ColumnID != columnID {
			tasks = append(tasks, task)
		}
	}
	board.Columns = columns
	board.Tasks = tasks
	boards[userID] = board

	return s.storage.Write(ctx, storage.KeyBoards, boards)
}

// AddTask appends a task with order = count of tasks already in that
// column. The column id is not validated; callers only add tasks to
// columns they can see.
func (s *BoardStore) AddTask(ctx context.Context, userID, columnID, title, description string, priority model.Priority, progress int) (*model.Task, error) {
	if priority == "" {
		priority = model.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	board, err := s.ensure(ctx, boards, userID)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, task := range board.Tasks {
		if task.ColumnID == columnID {
			count++
		}
	}

	task := model.Task{
		ID:          uuid.NewString(),
		ColumnID:    columnID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Progress:    clampProgress(progress),
		CreatedAt:   time.Now().UnixMilli(),
		Order:       count,
	}
	board.Tasks = append(board.Tasks, task)
	boards[userID] = board

	if err := s.storage.Write(ctx, storage.KeyBoards, boards); err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskUpdate holds the fields of a partial task update; nil fields are
// left untouched. Column reassignment on drag-and-drop is a ColumnID
// update.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *model.Priority
	Progress    *int
	ColumnID    *string
	Order       *int
}

// UpdateTask merges the provided fields into an existing task; a missing
// task id is a no-op.
func (s *BoardStore) UpdateTask(ctx context.Context, userID, taskID string, update TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	board, err := s.ensure(ctx, boards, userID)
	if err != nil {
		return err
	}

	for i := range board.Tasks {
		if board.Tasks[i].ID != taskID {
			continue
		}
		task := &board.Tasks[i]
		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Description != nil {
			task.Description = *update.Description
		}
		if update.Priority != nil {
			task.Priority = *update.Priority
		}
		if update.Progress != nil {
			task.Progress = clampProgress(*update.Progress)
		}
		if update.ColumnID != nil {
			task.ColumnID = *update.ColumnID
		}
		if update.Order != nil {
			task.Order = *update.Order
		}
		boards[userID] = board
		return s.storage.Write(ctx, storage.KeyBoards, boards)
	}
	return nil
}

// DeleteTask removes a task by id; a missing task id is a no-op.
func (s *BoardStore) DeleteTask(ctx context.Context, userID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	board, err := s.ensure(ctx, boards, userID)
	if err != nil {
		return err
	}

	tasks := make([]model.Task, 0, len(board.Tasks))
	for _, task := range board.Tasks {
		if task.ID != taskID {
			tasks = append(tasks, task)
		}
	}
	board.Tasks = tasks
	boards[userID] = board

	return s.storage.Write(ctx, storage.KeyBoards, boards)
}

// Columns returns the board's columns sorted by order. Deletions leave
// gaps in the order sequence, so slice position is not authoritative.
func (s *BoardStore) Columns(ctx context.Context, userID string) ([]model.Column, error) {
	board, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	columns := append([]model.Column(nil), board.Columns...)
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Order < columns[j].Order
	})
	return columns, nil
}

// ColumnTasks returns the tasks of one column sorted by order.
func (s *BoardStore) ColumnTasks(ctx context.Context, userID, columnID string) ([]model.Task, error) {
	board, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0, len(board.Tasks))
	for _, task := range board.Tasks {
		if task.ColumnID == columnID {
			tasks = append(tasks, task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Order < tasks[j].Order
	})
	return tasks, nil
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
