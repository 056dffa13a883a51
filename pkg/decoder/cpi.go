package decoder

import (
	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/view"
)

// EventIxTag prefixes events emitted through Anchor's emit_cpi!, ahead of the
// event's own discriminator.
var EventIxTag = Discriminator{0xe4, 0x45, 0xa5, 0x2e, 0x51, 0xcb, 0x9a, 0x1d}

// UnwrapEventCPI strips EventIxTag from data and reports whether it was
// present. The returned body may be shorter than a discriminator when the
// payload was cut off inside the event tag.
func UnwrapEventCPI(data []byte) ([]byte, bool) {
	rv, err := view.NewRecordView(data)
	if err != nil || !rv.HasTag(EventIxTag) {
		return data, false
	}
	return rv.Body(), true
}

// EventDispatcher wraps d so that self-CPI event payloads are unwrapped before dispatch.
// A wrapped payload without a complete event tag is Truncated.
func EventDispatcher(d Dispatcher) Dispatcher {
	return DispatcherFunc(func(data []byte) (*Record, error) {
		inner, wrapped := UnwrapEventCPI(data)
		if wrapped && len(inner) < DiscriminatorSize {
			return nil, &borsh.DecodeError{
				Kind:   borsh.KindTruncated,
				Field:  "discriminator",
				Reason: "event tag missing after emit_cpi tag",
				Need:   DiscriminatorSize,
				Have:   len(inner),
			}
		}
		return d.Dispatch(inner)
	})
}
