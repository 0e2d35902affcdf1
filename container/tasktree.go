package container

import "github.com/grpc-boot/carcare"

type taskNode struct {
	task  carcare.Task
	left  *taskNode
	right *taskNode
}

// TaskTree is an unbalanced binary search tree keyed by Task.Priority.
// Equal priorities descend right, so duplicates keep insertion order in-order.
type TaskTree struct {
	root   *taskNode
	length int
}

func NewTaskTree() *TaskTree {
	return &TaskTree{}
}

func (tt *TaskTree) AddTask(task carcare.Task) {
	link := &tt.root
	for *link != nil {
		if task.Priority < (*link).task.Priority {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}

	*link = &taskNode{task: task}
	tt.length++
}

// TasksInPriorityOrder walks the tree in-order: ascending priority, ties in insertion order.
func (tt *TaskTree) TasksInPriorityOrder() (tasks []carcare.Task) {
	tasks = make([]carcare.Task, 0, tt.length)

	var (
		stack   = make([]*taskNode, 0, 16)
		current = tt.root
	)

	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tasks = append(tasks, current.task)
		current = current.right
	}

	return tasks
}

// FindTask returns the first task with the given priority on the search path,
// i.e. the equal-priority node closest to the root.
func (tt *TaskTree) FindTask(priority int) (task carcare.Task, exists bool) {
	current := tt.root
	for current != nil {
		if current.task.Priority == priority {
			return current.task, true
		}

		if priority < current.task.Priority {
			current = current.left
		} else {
			current = current.right
		}
	}

	return
}

func (tt *TaskTree) Len() int {
	return tt.length
}

// Height counts levels, 0 for an empty tree.
func (tt *TaskTree) Height() (height int) {
	if tt.root == nil {
		return 0
	}

	level := []*taskNode{tt.root}
	for len(level) > 0 {
		next := make([]*taskNode, 0, len(level)*2)
		for _, node := range level {
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		level = next
		height++
	}

	return height
}
