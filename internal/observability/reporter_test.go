package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReporter_BuildsStructuredRecord(t *testing.T) {
	r := NewReporter(zap.NewNop())

	before := time.Now().UTC()
	rec := r.Report(errors.New("classes: no definition for \"necromancer\""), "createEntity")
	after := time.Now().UTC()

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, `classes: no definition for "necromancer"`, rec.Message)
	assert.Equal(t, "createEntity", rec.Context)
	assert.Equal(t, "error", rec.Severity)
	assert.False(t, rec.Timestamp.Before(before))
	assert.False(t, rec.Timestamp.After(after))
	assert.NotEmpty(t, rec.Stack)
}

func TestReporter_RecordIDsAreUnique(t *testing.T) {
	r := NewReporter(zap.NewNop())
	a := r.Report(errors.New("one"), "test")
	b := r.Report(errors.New("two"), "test")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestReporter_NotifiesObserver(t *testing.T) {
	r := NewReporter(zap.NewNop())
	ch := make(chan Report, 1)
	r.SetObserver(ch)

	rec := r.Report(errors.New("boom"), "createEntity")

	select {
	case got := <-ch:
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, "createEntity", got.Context)
	default:
		t.Fatal("observer channel did not receive the report")
	}
}

func TestReporter_FullObserverDoesNotBlock(t *testing.T) {
	r := NewReporter(zap.NewNop())
	ch := make(chan Report, 1)
	r.SetObserver(ch)

	r.Report(errors.New("first"), "test")
	done := make(chan struct{})
	go func() {
		// channel is full; this must drop rather than block
		r.Report(errors.New("second"), "test")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Report blocked on a full observer channel")
	}
}

func TestReporter_DetachObserver(t *testing.T) {
	r := NewReporter(zap.NewNop())
	ch := make(chan Report, 1)
	r.SetObserver(ch)
	r.SetObserver(nil)

	r.Report(errors.New("boom"), "test")
	assert.Empty(t, ch)
}

func TestNewReporter_RequiresLogger(t *testing.T) {
	require.Panics(t, func() { NewReporter(nil) })
}
