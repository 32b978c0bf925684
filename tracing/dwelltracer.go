package tracing

import (
	"sync"

	"github.com/sarchlab/parkinglot/timing"
)

// DwellTracer collects how many tasks of interest ended and how long they
// lasted on average. The lot uses it to summarize gate cycles and stays.
type DwellTracer struct {
	timeTeller    timing.TimeTeller
	filter        TaskFilter
	lock          sync.Mutex
	inflightTasks map[string]Task
	taskCount     uint64
	totalTime     timing.VTimeInMs
	longest       timing.VTimeInMs
}

// NewDwellTracer creates a new DwellTracer.
func NewDwellTracer(
	timeTeller timing.TimeTeller,
	filter TaskFilter,
) *DwellTracer {
	return &DwellTracer{
		timeTeller:    timeTeller,
		filter:        filter,
		inflightTasks: make(map[string]Task),
	}
}

// StartTask records the task start time.
func (t *DwellTracer) StartTask(task Task) {
	if !t.filter(task) {
		return
	}

	task.StartTime = t.timeTeller.Now()

	t.lock.Lock()
	t.inflightTasks[task.ID] = task
	t.lock.Unlock()
}

// EndTask records the end of the task.
func (t *DwellTracer) EndTask(task Task) {
	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	originalTask, ok := t.inflightTasks[task.ID]
	if !ok {
		return
	}

	delete(t.inflightTasks, task.ID)

	span := now.Since(originalTask.StartTime)
	t.totalTime += span
	t.taskCount++

	if span > t.longest {
		t.longest = span
	}
}

// TotalCount returns the number of tasks that ended.
func (t *DwellTracer) TotalCount() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.taskCount
}

// AverageTime returns the average duration of the ended tasks.
func (t *DwellTracer) AverageTime() timing.VTimeInMs {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.taskCount == 0 {
		return 0
	}

	return t.totalTime / timing.VTimeInMs(t.taskCount)
}

// LongestTime returns the longest duration seen.
func (t *DwellTracer) LongestTime() timing.VTimeInMs {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.longest
}
