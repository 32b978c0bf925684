package tracing

import (
	"sync"

	"github.com/sarchlab/parkinglot/datarecording"
	"github.com/sarchlab/parkinglot/timing"
)

// TraceTableName is the table DBTracer writes finished tasks into.
const TraceTableName = "trace"

// TaskTableEntry is the row a finished task is stored as.
type TaskTableEntry struct {
	ID        string
	ParentID  string
	Kind      string
	What      string
	Location  string
	StartTime uint64
	EndTime   uint64
}

// DBTracer is a tracer that stores finished tasks into a DataRecorder.
// Tasks that never end, such as a car still parked at shutdown, are not
// written.
type DBTracer struct {
	mu         sync.Mutex
	timeTeller timing.TimeTeller
	backend    datarecording.DataRecorder

	tracingTasks map[string]Task
}

// NewDBTracer creates a new DBTracer and its table.
func NewDBTracer(
	timeTeller timing.TimeTeller,
	dataRecorder datarecording.DataRecorder,
) *DBTracer {
	dataRecorder.CreateTable(TraceTableName, TaskTableEntry{})

	return &DBTracer{
		timeTeller:   timeTeller,
		backend:      dataRecorder,
		tracingTasks: make(map[string]Task),
	}
}

// StartTask marks the start of a task.
func (t *DBTracer) StartTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task.StartTime = t.timeTeller.Now()
	t.tracingTasks[task.ID] = task
}

// EndTask marks the end of a task and writes it.
func (t *DBTracer) EndTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	originalTask, ok := t.tracingTasks[task.ID]
	if !ok {
		return
	}

	delete(t.tracingTasks, task.ID)

	originalTask.EndTime = t.timeTeller.Now()
	t.backend.InsertData(TraceTableName, TaskTableEntry{
		ID:        originalTask.ID,
		ParentID:  originalTask.ParentID,
		Kind:      originalTask.Kind,
		What:      originalTask.What,
		Location:  originalTask.Where,
		StartTime: uint64(originalTask.StartTime),
		EndTime:   uint64(originalTask.EndTime),
	})
}

// InflightCount returns the number of tasks started but not ended.
func (t *DBTracer) InflightCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.tracingTasks)
}

// Terminate flushes the written tasks.
func (t *DBTracer) Terminate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.backend.Flush()
}
