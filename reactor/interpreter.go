package reactor

import "go.opentelemetry.io/otel/attribute"

// runOutcome classifies how one interpreter invocation on one layer ended.
type runOutcome int

const (
	// outcomeComplete means the node ran its sequence to the end without
	// skip or fail; the driver fans out to node.Next.
	outcomeComplete runOutcome = iota
	// outcomeSkip means a check or filter step set local.skip; the node
	// does not propagate further downstream.
	outcomeSkip
	// outcomeFail means a filter/compute/run user function returned an
	// error; the node does not propagate further downstream, but the
	// drain continues with the next layer.
	outcomeFail
	// outcomeSuspended means a barrier or run step pushed this layer back
	// onto the queue (or coalesced into an already-pending barrier) and
	// control has already returned to the drain loop; there is nothing
	// further for the driver to do with this layer.
	outcomeSuspended
)

// interpretResult is what one call to interpret reports back to the
// drain loop.
type interpretResult struct {
	outcome runOutcome
	stack   *StackFrame // the stack frame to fan out from, on outcomeComplete
	userErr error       // the filter/compute/run function's error, on outcomeFail
	skipReason string   // "defined", "changed", or "filter", on outcomeSkip
	barrierID BarrierID // non-empty when this suspension is a barrier, for diagnostics
	coalesced bool      // true when a barrier suspension coalesced into an already-pending registration
}

// interpret evaluates node.Seq[layer.Idx..] against layer.Stack. It
// returns a structural *EngineError only when the graph itself is
// malformed (unknown opcode, reference to an unregistered ref cell) —
// conditions that cannot arise from correctly constructed graphs and which
// abort the whole drain, unlike a filter/compute/run function returning
// its own error (outcomeFail), which the engine swallows, flags, and
// continues past.
func (eng *Engine) interpret(layer Layer) (interpretResult, *EngineError) {
	node := layer.Stack.Node
	stack := layer.Stack
	resumeIdx := layer.Idx

	for i := resumeIdx; i < len(node.Seq); i++ {
		step := node.Seq[i]

		switch step.Kind {
		case StepBarrier:
			data, ok := step.Data.(BarrierData)
			if !ok {
				return interpretResult{}, &EngineError{Code: CodeUnknownStep, Message: "barrier step missing BarrierData", NodeID: node.ID}
			}
			if i != resumeIdx || layer.Priority != data.Priority {
				already := eng.barriers.register(data.BarrierID)
				if !already {
					eng.queue.Enqueue(data.Priority, Layer{Idx: i, Stack: stack, ID: data.BarrierID})
					eng.emitEvent(node.ID, "barrier_suspend", map[string]interface{}{"barrier_id": data.BarrierID, "priority": data.Priority.String()})
					eng.addSpanEvent("barrier_checkpoint", attribute.String("reactor.node_id", node.ID), attribute.String("reactor.priority", data.Priority.String()), attribute.Bool("reactor.suspended", true))
					return interpretResult{outcome: outcomeSuspended, barrierID: data.BarrierID}, nil
				}
				eng.emitEvent(node.ID, "barrier_coalesced", map[string]interface{}{"barrier_id": data.BarrierID, "priority": data.Priority.String()})
				eng.addSpanEvent("barrier_checkpoint", attribute.String("reactor.node_id", node.ID), attribute.String("reactor.priority", data.Priority.String()), attribute.Bool("reactor.suspended", true))
				return interpretResult{outcome: outcomeSuspended, barrierID: data.BarrierID, coalesced: true}, nil
			}
			eng.barriers.release(data.BarrierID)
			eng.emitEvent(node.ID, "barrier_resume", map[string]interface{}{"barrier_id": data.BarrierID})
			eng.addSpanEvent("barrier_checkpoint", attribute.String("reactor.node_id", node.ID), attribute.String("reactor.priority", layer.Priority.String()), attribute.Bool("reactor.suspended", false))

		case StepRun:
			if i != resumeIdx || layer.Priority != Effect {
				eng.queue.Enqueue(Effect, Layer{Idx: i, Stack: stack})
				eng.emitEvent(node.ID, "run_deferred", map[string]interface{}{"priority": layer.Priority.String()})
				eng.addSpanEvent("run_checkpoint", attribute.String("reactor.node_id", node.ID), attribute.String("reactor.priority", layer.Priority.String()), attribute.Bool("reactor.suspended", true))
				return interpretResult{outcome: outcomeSuspended}, nil
			}
			eng.addSpanEvent("run_checkpoint", attribute.String("reactor.node_id", node.ID), attribute.String("reactor.priority", layer.Priority.String()), attribute.Bool("reactor.suspended", false))
			data, ok := step.Data.(RunData)
			if !ok {
				return interpretResult{}, &EngineError{Code: CodeUnknownStep, Message: "run step missing RunData", NodeID: node.ID}
			}
			v, err := data.Fn(stack.Value, node.Scope, stack)
			if err != nil {
				return interpretResult{outcome: outcomeFail, stack: stack, userErr: err}, nil
			}
			stack.Value = v

		case StepMov:
			data, ok := step.Data.(MovData)
			if !ok {
				return interpretResult{}, &EngineError{Code: CodeUnknownStep, Message: "mov step missing MovData", NodeID: node.ID}
			}
			if structErr := execMov(node, stack, data); structErr != nil {
				return interpretResult{}, structErr
			}

		case StepCheck:
			data, ok := step.Data.(CheckData)
			if !ok {
				return interpretResult{}, &EngineError{Code: CodeUnknownStep, Message: "check step missing CheckData", NodeID: node.ID}
			}
			skip, reason, structErr := execCheck(node, stack, data)
			if structErr != nil {
				return interpretResult{}, structErr
			}
			if skip {
				return interpretResult{outcome: outcomeSkip, skipReason: reason}, nil
			}

		case StepFilter:
			data, ok := step.Data.(FilterData)
			if !ok {
				return interpretResult{}, &EngineError{Code: CodeUnknownStep, Message: "filter step missing FilterData", NodeID: node.ID}
			}
			keep, err := data.Fn(stack.Value, node.Scope, stack)
			if err != nil {
				return interpretResult{outcome: outcomeFail, stack: stack, userErr: err}, nil
			}
			if !keep {
				return interpretResult{outcome: outcomeSkip, skipReason: "filter"}, nil
			}

		case StepCompute:
			data, ok := step.Data.(ComputeData)
			if !ok {
				return interpretResult{}, &EngineError{Code: CodeUnknownStep, Message: "compute step missing ComputeData", NodeID: node.ID}
			}
			v, err := data.Fn(stack.Value, node.Scope, stack)
			if err != nil {
				return interpretResult{outcome: outcomeFail, stack: stack, userErr: err}, nil
			}
			stack.Value = v

		default:
			return interpretResult{}, &EngineError{Code: CodeUnknownStep, Message: "unrecognized step kind", NodeID: node.ID}
		}
	}

	return interpretResult{outcome: outcomeComplete, stack: stack}, nil
}

// execMov implements the mov opcode's source/destination slot table.
// Assignment, not copy.
func execMov(node *GraphNode, stack *StackFrame, d MovData) *EngineError {
	var v Value
	switch d.From {
	case SlotStack, SlotA, SlotB:
		v = stack.get(d.From)
	case SlotValue:
		v = d.Literal
	case SlotStore:
		cell, ok := node.ref(d.Store)
		if !ok {
			return &EngineError{Code: CodeUnknownRegister, Message: "mov source store " + d.Store + " not registered", NodeID: node.ID}
		}
		v = cell.Read()
	default:
		return &EngineError{Code: CodeBadMovSource, Message: "unrecognized mov source slot", NodeID: node.ID}
	}

	switch d.To {
	case SlotStack, SlotA, SlotB:
		stack.set(d.To, v)
	case SlotStore:
		cell, ok := node.ref(d.Store)
		if !ok {
			return &EngineError{Code: CodeUnknownRegister, Message: "mov destination store " + d.Store + " not registered", NodeID: node.ID}
		}
		cell.write(v)
	default:
		return &EngineError{Code: CodeBadMovSource, Message: "unrecognized mov destination slot", NodeID: node.ID}
	}
	return nil
}

// execCheck implements the two check kinds. It returns skip=true and the
// reason string the caller should report in diagnostics and node_skip
// events.
func execCheck(node *GraphNode, stack *StackFrame, d CheckData) (skip bool, reason string, structErr *EngineError) {
	switch d.Kind {
	case CheckDefined:
		return isUndefined(stack.Value), "defined", nil
	case CheckChanged:
		cell, ok := node.ref(d.Store)
		if !ok {
			return false, "", &EngineError{Code: CodeUnknownRegister, Message: "check store " + d.Store + " not registered", NodeID: node.ID}
		}
		return valuesEqual(stack.Value, cell.Read()), "changed", nil
	default:
		return false, "", &EngineError{Code: CodeUnknownStep, Message: "unrecognized check kind", NodeID: node.ID}
	}
}
