// Package flow is the streaming core of the application. It models a
// flowgraph as named blocks wired together port-to-port, and executes
// the graph by giving every block its own goroutine, with a circular
// stream buffer backing each connection.
//
// Execution is pull-free: upstream blocks write into their output
// buffers as fast as space allows and block when a downstream reader
// lags. Completion propagates forward as io.EOF when a writer closes,
// and backward as io.ErrClosedPipe when every reader of a buffer has
// detached. Blocks surface both sentinels out of Work unchanged; the
// engine treats them as clean shutdown, so a Work loop can simply
// return whatever its stream calls produced.
package flow
