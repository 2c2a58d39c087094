package spinor

import (
	"context"
	"time"

	"spinor/config"
)

// Program and erase deadlines, overridable via
// config.ProgramDeadline/config.EraseDeadline.
var (
	deadlineProgram = config.ProgramDeadline()
	deadlineErase   = config.EraseDeadline()
)

// waitReady busy-polls the status register (and, if the chip uses the
// flag status register, that too) until the chip reports ready, the
// deadline elapses, or the transport errors. It never extends the
// deadline and never sleeps between polls.
func waitReady(ctx context.Context, t Transport, cs *ChipState, deadline time.Duration) error {
	r := regs{t}
	cutoff := time.Now().Add(deadline)
	for {
		sr, err := r.readStatus(ctx)
		if err != nil {
			return newErr("wait-ready", KindIO, err)
		}
		ready := sr&srWIP == 0
		if ready && cs.useFlagStatus {
			fsr, err := r.readFlagStatus(ctx)
			if err != nil {
				return newErr("wait-ready", KindIO, err)
			}
			ready = fsr&fsrReady != 0
		}
		if ready {
			return nil
		}
		if time.Now().After(cutoff) {
			return newErr("wait-ready", KindTimeout, nil)
		}
		select {
		case <-ctx.Done():
			return newErr("wait-ready", KindIO, ctx.Err())
		default:
		}
	}
}
