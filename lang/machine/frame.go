package machine

import "github.com/mna/fncatalog/lang/types"

// Frame records an active call to a Callable or a Constructor.
type Frame struct {
	callable types.Value
	args     types.Tuple
	recv     *types.Object // receiver, set only under the new-instance protocol
}

// Callable returns the callable value of the frame.
func (fr *Frame) Callable() types.Value { return fr.callable }

// Args returns the arguments of the call.
func (fr *Frame) Args() types.Tuple { return fr.args }

// Receiver returns the object bound by the new-instance protocol, or nil for
// an ordinary call.
func (fr *Frame) Receiver() *types.Object { return fr.recv }
