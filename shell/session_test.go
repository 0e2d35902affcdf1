package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/grpc-boot/carcare/orderid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionTestSuite struct {
	suite.Suite

	out  *bytes.Buffer
	conf *Config
}

func (suite *SessionTestSuite) SetupTest() {
	suite.out = &bytes.Buffer{}
	suite.conf = DefaultConfig()
	suite.conf.NoColor = true
	suite.conf.Prompt = ""
}

func (suite *SessionTestSuite) newSession(name string, script ...string) *Session {
	demo, err := NewDemo(name, suite.conf)
	suite.Require().NoError(err)

	ids, err := orderid.New(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	return NewSession(demo, Options{
		In:     strings.NewReader(strings.Join(script, "\n")),
		Out:    suite.out,
		Config: suite.conf,
		Ids:    ids,
	})
}

func (suite *SessionTestSuite) run(name string, script ...string) (*Session, []string) {
	session := suite.newSession(name, script...)
	suite.Require().NoError(session.Run(context.Background()))
	return session, strings.Split(strings.TrimRight(suite.out.String(), "\n"), "\n")
}

func (suite *SessionTestSuite) metric(session *Session, name string) uint64 {
	value, exists := session.Monitor().Get(name)
	suite.Require().True(exists, name)
	return value
}

func (suite *SessionTestSuite) TestTasks() {
	session, lines := suite.run(DemoTasks,
		"list",
		"add Inspection 50 Ann",
		"add Brakes 30 Bob",
		"add Wash 70 Cid",
		`add "Oil Change" 20 "Dee Dee"`,
		"add Tires 40 Eve",
		"add Tires high Eve",
		"add Tires 10",
		"list",
		"find 30",
		"find 31",
		"find x",
		"status",
	)

	suite.Require().Equal([]string{
		"Car Maintenance Service - Binary Tree",
		"No tasks available.",
		"Task added successfully!",
		"Task added successfully!",
		"Task added successfully!",
		"Task added successfully!",
		"Task added successfully!",
		"Please fill in all fields with valid data.",
		"Please fill in all fields with valid data.",
		"Task: Oil Change, Priority: 20, Customer: Dee Dee",
		"Task: Brakes, Priority: 30, Customer: Bob",
		"Task: Tires, Priority: 40, Customer: Eve",
		"Task: Inspection, Priority: 50, Customer: Ann",
		"Task: Wash, Priority: 70, Customer: Cid",
		"Task: Brakes, Priority: 30, Customer: Bob",
		"No task found with priority 31.",
		"Please enter a valid priority.",
		"Tasks: 5, Height: 3",
	}, lines)

	suite.Require().Equal(uint64(13), suite.metric(session, MetricCommands))
	suite.Require().Equal(uint64(3), suite.metric(session, MetricFailures))
	suite.Require().Equal(uint64(5), suite.metric(session, MetricTasksAdded))
	suite.Require().Equal(uint64(2), suite.metric(session, MetricSearches))
	suite.Require().Equal(uint64(1), suite.metric(session, MetricSearchMisses))
}

func (suite *SessionTestSuite) TestDeque() {
	suite.conf.Capacity = 3
	session, lines := suite.run(DemoDeque,
		"remove-front",
		"add-rear A Ann Wash",
		"add-rear B Bob Wash",
		"add-rear C Cid Wash",
		"add-rear D Dee Wash",
		"add-front",
		"remove-rear",
		"list",
	)

	suite.Require().Equal([]string{
		"Order Management - Deque",
		"No orders available.",
		"No orders to remove from front.",
		"Order added to the rear!",
		"1. Order ID: A, Customer: Ann, Service: Wash",
		"Order added to the rear!",
		"1. Order ID: A, Customer: Ann, Service: Wash",
		"2. Order ID: B, Customer: Bob, Service: Wash",
		"Order added to the rear!",
		"1. Order ID: A, Customer: Ann, Service: Wash",
		"2. Order ID: B, Customer: Bob, Service: Wash",
		"3. Order ID: C, Customer: Cid, Service: Wash",
		"Order added to the rear!",
		"1. Order ID: B, Customer: Bob, Service: Wash",
		"2. Order ID: C, Customer: Cid, Service: Wash",
		"3. Order ID: D, Customer: Dee, Service: Wash",
		"Please fill in all fields.",
		"Removed order from rear: Order ID: D, Customer: Dee, Service: Wash",
		"1. Order ID: B, Customer: Bob, Service: Wash",
		"2. Order ID: C, Customer: Cid, Service: Wash",
		"1. Order ID: B, Customer: Bob, Service: Wash",
		"2. Order ID: C, Customer: Cid, Service: Wash",
	}, lines)

	suite.Require().Equal(uint64(1), suite.metric(session, MetricEvictions))
	suite.Require().Equal(uint64(1), suite.metric(session, MetricRemoveMisses))
	suite.Require().Equal(uint64(1), suite.metric(session, MetricOrdersRemoved))
	suite.Require().Equal(uint64(4), suite.metric(session, MetricOrdersAdded))
}

func (suite *SessionTestSuite) TestOrders() {
	session, lines := suite.run(DemoOrders,
		"add 1 Ann Wash",
		"add 2 Bob Tires",
		"remove 1",
		"remove 9",
		"remove",
	)

	suite.Require().Equal([]string{
		"Car Maintenance Orders - Singly Linked List",
		"Order added successfully!",
		"Order ID: 1, Customer: Ann, Service: Wash",
		"Order added successfully!",
		"Order ID: 1, Customer: Ann, Service: Wash",
		"Order ID: 2, Customer: Bob, Service: Tires",
		"Order 1 removed successfully!",
		"Order ID: 2, Customer: Bob, Service: Tires",
		"Order ID: 2, Customer: Bob, Service: Tires",
		"Order 9 not found.",
		"Please enter the Order ID to remove.",
	}, lines)

	suite.Require().Equal(uint64(2), suite.metric(session, MetricFailures))
}

func (suite *SessionTestSuite) TestPriorityOrders() {
	_, lines := suite.run(DemoPriorityOrders,
		"add a Ann Wash 3",
		"add b Bob Tires 1",
		"add c Cid Oil 2",
		"add d Dee Oil 5",
		"add d Dee Oil two",
		"add d Dee Oil",
		"sort",
	)

	suite.Require().Equal([]string{
		"Priority must be between 1 and 3.",
		"Priority must be an integer between 1 and 3.",
		"Please fill in all fields.",
		"Orders sorted based on priority!",
		"Order ID: b, Customer: Bob, Service: Tires, Priority: 1",
		"Order ID: c, Customer: Cid, Service: Oil, Priority: 2",
		"Order ID: a, Customer: Ann, Service: Wash, Priority: 3",
	}, lines[len(lines)-7:])
}

func (suite *SessionTestSuite) TestCatalog() {
	session, _ := suite.run(DemoCatalog, "dump", "show", "list")

	output := suite.out.String()
	suite.Require().Contains(output, "- Car Maintenance Services\n    - Oil Services\n        - Oil Change\n")
	suite.Require().Contains(output, "Spark Plug Replacement")
	suite.Require().Contains(output, "2 Oil Filter Replacement")
	suite.Require().Equal(uint64(3), suite.metric(session, MetricViews))
}

func (suite *SessionTestSuite) TestJsonOutput() {
	suite.conf.Output = OutputJSON
	suite.conf.Seed.Tasks = nil

	_, lines := suite.run(DemoTasks, "list")
	suite.Require().Equal([]string{"Car Maintenance Service - Binary Tree", "[]"}, lines)
}

func (suite *SessionTestSuite) TestTableOutput() {
	suite.conf.Output = OutputTable
	suite.run(DemoOrders, "add 1 Ann Wash", "stats")

	output := suite.out.String()
	suite.Require().Contains(output, "ORDER ID")
	suite.Require().Contains(output, "Ann")
	suite.Require().Contains(output, "METRIC")
}

func (suite *SessionTestSuite) TestYamlOutput() {
	suite.conf.Output = OutputYAML
	suite.run(DemoCatalog, "show")

	output := suite.out.String()
	suite.Require().Contains(output, "name: Car Maintenance Services")
	suite.Require().Contains(output, "- name: Oil Services")
}

func (suite *SessionTestSuite) TestAutoOrderId() {
	session, lines := suite.run(DemoOrders, "add auto Ann Wash")

	orders := session.demo.(*OrderDemo).List().Orders()
	suite.Require().Len(orders, 1)
	suite.Require().True(strings.HasPrefix(orders[0].OrderId, orderid.Prefix))
	suite.Require().Contains(lines, "Order ID: "+orders[0].OrderId+", Customer: Ann, Service: Wash")
}

func (suite *SessionTestSuite) TestBuiltins() {
	session := suite.newSession(DemoTasks)

	suite.Require().NoError(session.Execute("help"))
	suite.Require().Contains(suite.out.String(), "find <priority>")
	suite.Require().Contains(suite.out.String(), "stats")

	err := session.Execute("fly away")
	suite.Require().Equal(ErrUnknownCommand, errors.Cause(err))

	suite.Require().Equal(ErrUnterminatedQuote, session.Execute(`add "oops`))

	suite.Require().NoError(session.Execute("# comment"))
	suite.Require().NoError(session.Execute("quit"))
	suite.Require().True(session.Closed())
}

func (suite *SessionTestSuite) TestQuitStopsReading() {
	session, lines := suite.run(DemoTasks, "quit", "add Wash 1 Ann")

	suite.Require().Equal([]string{"Car Maintenance Service - Binary Tree"}, lines)
	suite.Require().Equal(uint64(0), suite.metric(session, MetricTasksAdded))
}

func (suite *SessionTestSuite) TestContextCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := suite.newSession(DemoTasks, "add Wash 1 Ann")
	suite.Require().Equal(context.Canceled, session.Run(ctx))
	suite.Require().True(session.Closed())
}

func (suite *SessionTestSuite) TestAutoIdDisabled() {
	demo, err := NewDemo(DemoOrders, suite.conf)
	suite.Require().NoError(err)

	session := NewSession(demo, Options{Out: suite.out, Config: suite.conf})
	suite.Require().Equal(ErrAutoIdDisabled, session.Execute("add auto Ann Wash"))
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func TestNewDemo_Unknown(t *testing.T) {
	_, err := NewDemo("queue", nil)
	require.Equal(t, ErrUnknownDemo, errors.Cause(err))

	for _, name := range DemoNames {
		demo, err := NewDemo(name, nil)
		require.NoError(t, err)
		require.Equal(t, name, demo.Name())
	}
}
