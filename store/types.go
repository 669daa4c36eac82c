// Package store holds the enums of the order store. Their string codecs are
// generated from the //enumstr: directives below.
package store

// OrderStatus is the lifecycle state of an order.
//
//enumstr:enum
//enumstr:trim_prefix=Status
//enumstr:rename_all=SCREAMING_SNAKE_CASE
type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
	StatusPaid    OrderStatus = "PAID" //enumstr:alias=PAYED
	StatusShipped OrderStatus = "SHIPPED"
	//enumstr:alias=CANCELED
	StatusCancelled OrderStatus = "CANCELLED"
	// StatusArchived is read from old orders but no longer written.
	//
	//enumstr:skip_serializing
	StatusArchived OrderStatus = "ARCHIVED"
	// StatusOther holds any status this version does not know about.
	//
	//enumstr:other=string
	StatusOther OrderStatus = ""
)

// Priority orders the fulfilment queue.
//
//enumstr:enum
//enumstr:rename_all(serialize=lowercase,deserialize=lowercase)
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	//enumstr:rename=asap
	//enumstr:alias=urgent
	PriorityImmediate
	//enumstr:skip
	priorityCount
)

// Channel is where an order was placed. It has no directives and is not an
// enum for the generator.
type Channel string

const (
	ChannelWeb    Channel = "web"
	ChannelMobile Channel = "mobile"
)
