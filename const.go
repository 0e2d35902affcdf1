package carcare

const (
	Ok = "OK"
)

//数值越小越紧急
const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

const (
	DefaultDequeCapacity = 5
	CatalogIndent        = "    "
)
