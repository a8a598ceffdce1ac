package reactor

// Layer is one queue entry: an instruction cursor (where to resume within
// Stack.Node.Seq), the stack frame to resume with, the priority class it
// is scheduled at, and an id used for heap ordering within the shared
// barrier/sampler heap. For layers produced by a `barrier` suspend, id is
// the barrier's StepID; for layers produced by a `run` suspend, id is
// unused (those go to the Effect FIFO bucket, not the heap).
type Layer struct {
	Idx      int
	Stack    *StackFrame
	Priority PriorityClass
	ID       BarrierID
}
