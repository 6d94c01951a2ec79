// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	ApplyTerminalResultOperation OperationName = "ApplyTerminalResult"
	GetOrderOperation            OperationName = "GetOrder"
	ListOrdersOperation          OperationName = "ListOrders"
	SubmitOrderOperation         OperationName = "SubmitOrder"
)
