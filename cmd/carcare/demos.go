package main

import (
	"github.com/grpc-boot/carcare/shell"
	"github.com/spf13/cobra"
)

var capacity int

var tasksCmd = &cobra.Command{
	Use:   shell.DemoTasks,
	Short: "Binary search tree of tasks keyed by priority.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, shell.DemoTasks)
	},
}

var dequeCmd = &cobra.Command{
	Use:   shell.DemoDeque,
	Short: "Bounded double-ended queue of orders.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, shell.DemoDeque)
	},
}

var ordersCmd = &cobra.Command{
	Use:   shell.DemoOrders,
	Short: "Singly linked list of orders.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, shell.DemoOrders)
	},
}

var priorityOrdersCmd = &cobra.Command{
	Use:   shell.DemoPriorityOrders,
	Short: "Singly linked list of orders sorted by priority with insertion sort.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, shell.DemoPriorityOrders)
	},
}

var catalogCmd = &cobra.Command{
	Use:   shell.DemoCatalog,
	Short: "Service catalog hierarchy.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, shell.DemoCatalog)
	},
}

func init() {
	dequeCmd.Flags().IntVar(&capacity, "capacity", 0, "maximum number of orders kept (default from config, 5)")

	rootCmd.AddCommand(tasksCmd, dequeCmd, ordersCmd, priorityOrdersCmd, catalogCmd)
}
