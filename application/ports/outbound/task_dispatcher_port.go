package outbound

// TaskDispatcher submits work to a bounded pool. Bounding the number of
// in-flight pipelines caps the memory held in media buffers.
type TaskDispatcher interface {
	Submit(task func()) error
}
