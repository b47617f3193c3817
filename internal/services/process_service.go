package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

var (
	ErrUnknownProcessType = errors.New("unknown process type")
	ErrEmptyProcessFile   = errors.New("uploaded file has no data rows")
)

// Column headers each process type expects in the uploaded CSV.
var processHeaders = map[string][]string{
	models.ProcessTypeStockUpdate: {"reference", "stock"},
	models.ProcessTypeOrderStatus: {"number", "status"},
}

type ProcessService interface {
	CreateFromUpload(ctx context.Context, processType, filename, contentType string, file io.Reader, size int64, createdBy *uuid.UUID) (*models.Process, error)
	Execute(ctx context.Context, id uuid.UUID) (*models.Process, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Process, error)
	List(ctx context.Context, limit, offset int) ([]*models.Process, int, error)
	RunQueued(ctx context.Context, limit int) error
	PurgeFinished(ctx context.Context, olderThan time.Duration) (int64, error)
}

type processService struct {
	processRepo repositories.ProcessRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	storage     StorageService
}

func NewProcessService(processRepo repositories.ProcessRepository,
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	storage StorageService) ProcessService {
	return &processService{
		processRepo: processRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		storage:     storage,
	}
}

// CreateFromUpload stores the file and queues a process row for the
// background runner. The file is not parsed here beyond validating the type.
func (s *processService) CreateFromUpload(ctx context.Context, processType, filename, contentType string, file io.Reader, size int64, createdBy *uuid.UUID) (*models.Process, error) {
	if !models.ValidProcessType(processType) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProcessType, processType)
	}

	key := ObjectName(processType, filename)
	if err := s.storage.Upload(ctx, ProcessFileBucket, key, contentType, file, size); err != nil {
		return nil, fmt.Errorf("failed to store process file: %w", err)
	}

	process := &models.Process{
		ID:        uuid.New(),
		Type:      processType,
		Status:    models.ProcessStatusQueued,
		FileKey:   key,
		CreatedBy: createdBy,
	}
	if err := s.processRepo.Create(ctx, process); err != nil {
		return nil, err
	}
	return process, nil
}

// Execute downloads the process file, applies it row by row and records the
// outcome. Row failures do not abort the run; they are collected on the
// process and reflected in the final status.
func (s *processService) Execute(ctx context.Context, id uuid.UUID) (*models.Process, error) {
	process, err := s.processRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, process)
}

func (s *processService) run(ctx context.Context, process *models.Process) (*models.Process, error) {
	process.Status = models.ProcessStatusProcessing
	if err := s.processRepo.UpdateProgress(ctx, process); err != nil {
		return nil, err
	}

	rows, err := s.readRows(ctx, process)
	if err != nil {
		process.Status = models.ProcessStatusFailed
		process.Errors = append(process.Errors, models.ProcessError{RowIndex: 0, Error: err.Error()})
		now := time.Now()
		process.CompletedAt = &now
		if updateErr := s.processRepo.UpdateProgress(ctx, process); updateErr != nil {
			return nil, updateErr
		}
		return process, nil
	}

	process.TotalRows = len(rows)
	for i, row := range rows {
		if err := s.applyRow(ctx, process.Type, row); err != nil {
			process.FailedRows++
			process.Errors = append(process.Errors, models.ProcessError{RowIndex: i + 1, Error: err.Error()})
		} else {
			process.ProcessedRows++
		}
	}

	switch {
	case process.ProcessedRows == 0:
		process.Status = models.ProcessStatusFailed
	case process.FailedRows > 0:
		process.Status = models.ProcessStatusPartial
	default:
		process.Status = models.ProcessStatusCompleted
	}
	now := time.Now()
	process.CompletedAt = &now

	if err := s.processRepo.UpdateProgress(ctx, process); err != nil {
		return nil, err
	}
	return process, nil
}

// readRows fetches and parses the CSV, validating the header against the
// process type. Returned rows exclude the header.
func (s *processService) readRows(ctx context.Context, process *models.Process) ([][]string, error) {
	file, err := s.storage.Download(ctx, ProcessFileBucket, process.FileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download process file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyProcessFile
	}

	expected := processHeaders[process.Type]
	header := records[0]
	for i, want := range expected {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("unexpected header %q, want %q", header[i], want)
		}
	}
	if len(records) == 1 {
		return nil, ErrEmptyProcessFile
	}
	return records[1:], nil
}

func (s *processService) applyRow(ctx context.Context, processType string, row []string) error {
	switch processType {
	case models.ProcessTypeStockUpdate:
		return s.applyStockRow(ctx, row)
	case models.ProcessTypeOrderStatus:
		return s.applyOrderRow(ctx, row)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownProcessType, processType)
	}
}

func (s *processService) applyStockRow(ctx context.Context, row []string) error {
	reference := strings.TrimSpace(row[0])
	if reference == "" {
		return errors.New("reference is empty")
	}
	stock, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return fmt.Errorf("invalid stock value %q", row[1])
	}
	if stock < 0 {
		return fmt.Errorf("stock cannot be negative: %d", stock)
	}
	found, err := s.productRepo.UpdateStockByReference(ctx, reference, stock)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("product with reference %q not found", reference)
	}
	return nil
}

func (s *processService) applyOrderRow(ctx context.Context, row []string) error {
	number := strings.TrimSpace(row[0])
	if number == "" {
		return errors.New("order number is empty")
	}
	status := strings.ToLower(strings.TrimSpace(row[1]))
	if !models.ValidOrderStatuses[status] {
		return fmt.Errorf("invalid order status %q", row[1])
	}
	found, err := s.orderRepo.UpdateStatusByNumber(ctx, number, status)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("order %q not found", number)
	}
	return nil
}

func (s *processService) GetByID(ctx context.Context, id uuid.UUID) (*models.Process, error) {
	return s.processRepo.GetByID(ctx, id)
}

func (s *processService) List(ctx context.Context, limit, offset int) ([]*models.Process, int, error) {
	processes, err := s.processRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.processRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return processes, total, nil
}

// RunQueued claims and executes queued processes. Called by the scheduler.
func (s *processService) RunQueued(ctx context.Context, limit int) error {
	claimed, err := s.processRepo.ClaimQueued(ctx, limit)
	if err != nil {
		return err
	}
	for _, process := range claimed {
		if _, err := s.run(ctx, process); err != nil {
			log.Printf("process %s failed: %v", process.ID, err)
		}
	}
	return nil
}

// PurgeFinished deletes finished processes older than the given age.
func (s *processService) PurgeFinished(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.processRepo.DeleteFinishedBefore(ctx, time.Now().Add(-olderThan))
}
