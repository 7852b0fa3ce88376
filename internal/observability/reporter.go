package observability

import (
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report is the structured record produced for a single reported failure.
type Report struct {
	ID        string    // unique record id
	Message   string    // underlying error text
	Context   string    // caller-supplied operation label, e.g. "createEntity"
	Severity  string    // currently always "error"
	Timestamp time.Time // UTC capture time
	Stack     string    // goroutine stack at the report site
}

// Reporter converts failures into structured records, logs them, and
// optionally notifies an observer channel.
//
// All methods are safe for concurrent use.
type Reporter struct {
	logger *zap.Logger

	mu       sync.Mutex
	observer chan<- Report
}

// NewReporter creates a Reporter backed by the given logger.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a non-nil *Reporter with no observer attached.
func NewReporter(logger *zap.Logger) *Reporter {
	if logger == nil {
		panic("observability: NewReporter requires a non-nil logger")
	}
	return &Reporter{logger: logger}
}

// SetObserver attaches a channel that receives a copy of every report.
// Passing nil detaches the current observer.
//
// Postcondition: Subsequent reports are pushed to ch with a
// non-blocking send; a full channel drops the notification.
func (r *Reporter) SetObserver(ch chan<- Report) {
	r.mu.Lock()
	r.observer = ch
	r.mu.Unlock()
}

// Report records a failure with its operation context.
//
// Precondition: err must be non-nil; context should name the failing operation.
// Postcondition: Returns the structured record; the record has been
// logged and, if an observer is attached, offered to its channel.
// Report never blocks and never fails.
func (r *Reporter) Report(err error, context string) Report {
	rec := Report{
		ID:        uuid.NewString(),
		Message:   err.Error(),
		Context:   context,
		Severity:  "error",
		Timestamp: time.Now().UTC(),
		Stack:     string(debug.Stack()),
	}

	r.logger.Error(rec.Message,
		zap.String("report_id", rec.ID),
		zap.String("context", rec.Context),
		zap.String("severity", rec.Severity),
		zap.Time("timestamp", rec.Timestamp),
	)

	r.mu.Lock()
	ch := r.observer
	r.mu.Unlock()
	if ch != nil {
		select {
		case ch <- rec:
		default:
			// observer is full or gone; dropping is preferable to
			// blocking the creation path
		}
	}

	return rec
}
