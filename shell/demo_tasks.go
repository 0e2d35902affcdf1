package shell

import (
	"strconv"

	"github.com/grpc-boot/carcare"
	"github.com/grpc-boot/carcare/container"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	MetricTasksAdded   = "tasks_added"
	MetricSearches     = "searches"
	MetricSearchMisses = "search_misses"
)

var taskHeader = table.Row{"Task", "Priority", "Customer"}

type TaskDemo struct {
	tree *container.TaskTree
}

func NewTaskDemo(seed []carcare.Task) *TaskDemo {
	demo := &TaskDemo{tree: container.NewTaskTree()}
	for _, task := range seed {
		demo.tree.AddTask(task)
	}
	return demo
}

func (td *TaskDemo) Name() string {
	return DemoTasks
}

func (td *TaskDemo) Title() string {
	return "Car Maintenance Service - Binary Tree"
}

func (td *TaskDemo) Metrics() []string {
	return []string{MetricTasksAdded, MetricSearches, MetricSearchMisses}
}

func (td *TaskDemo) Usage() []Usage {
	return []Usage{
		{Command: "add <type> <priority> <customer>", Description: "add a task"},
		{Command: "list", Description: "show tasks in priority order"},
		{Command: "find <priority>", Description: "search a task by priority"},
		{Command: "status", Description: "show tree size and height"},
	}
}

func (td *TaskDemo) Tree() *container.TaskTree {
	return td.tree
}

func (td *TaskDemo) Handle(s *Session, cmd Command) (handled bool, err error) {
	switch cmd.Name {
	case "add":
		return true, td.add(s, cmd)
	case "list", "show":
		return true, td.list(s)
	case "find", "search":
		return true, td.find(s, cmd)
	case "status":
		s.Renderer().Println("Tasks: " + strconv.Itoa(td.tree.Len()) + ", Height: " + strconv.Itoa(td.tree.Height()))
		return true, nil
	}
	return false, nil
}

func (td *TaskDemo) add(s *Session, cmd Command) error {
	taskType, customer := cmd.Arg(0), cmd.Arg(2)
	priority, ok := parseTaskPriority(cmd.Arg(1))
	if !ok || requireFields(taskType, customer) != nil {
		return ErrInvalidTask
	}

	td.tree.AddTask(carcare.NewTask(taskType, priority, customer))
	s.Monitor().Incr(MetricTasksAdded)
	s.Logger().Debug("task added", zap.Int("priority", priority), zap.Int("tasks", td.tree.Len()))
	s.Renderer().Success("Task added successfully!")
	return nil
}

func (td *TaskDemo) list(s *Session) error {
	tasks := td.tree.TasksInPriorityOrder()
	return s.Renderer().RenderListing(Listing{
		Empty:  "No tasks available.",
		Lines:  lo.Map(tasks, func(task carcare.Task, _ int) string { return carcare.FormatTask(task) }),
		Header: taskHeader,
		Rows: lo.Map(tasks, func(task carcare.Task, _ int) table.Row {
			return table.Row{task.Type, task.Priority, task.Customer}
		}),
		Items: tasks,
	})
}

func (td *TaskDemo) find(s *Session, cmd Command) error {
	priority, ok := parseTaskPriority(cmd.Arg(0))
	if !ok {
		return ErrInvalidSearch
	}

	s.Monitor().Incr(MetricSearches)
	task, exists := td.tree.FindTask(priority)
	if !exists {
		s.Monitor().Incr(MetricSearchMisses)
		s.Renderer().Println("No task found with priority " + cmd.Arg(0) + ".")
		return nil
	}

	return errors.Wrap(s.Renderer().RenderListing(Listing{
		Lines:  []string{carcare.FormatTask(task)},
		Header: taskHeader,
		Rows:   []table.Row{{task.Type, task.Priority, task.Customer}},
		Items:  task,
	}), "render task")
}
