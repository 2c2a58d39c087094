package spinor

import "context"

// ProgramAt writes src starting at offset. It does not erase first;
// callers must Erase the target range themselves, same as the MTD
// convention. SST parts route through the byte/word auto-increment
// sequence instead of page program.
func ProgramAt(ctx context.Context, t Transport, cs *ChipState, offset uint64, src []byte) error {
	if cs == nil {
		return newErr("program", KindConfig, nil)
	}
	if len(src) == 0 {
		return nil
	}
	if offset+uint64(len(src)) > cs.TotalSize {
		return newErr("program", KindInvalidArgument, nil)
	}

	if err := t.Claim(ctx); err != nil {
		return newErr("program", KindIO, err)
	}
	defer t.Release()

	if hasLock(cs) {
		locked, err := IsLocked(ctx, t, cs, offset, uint64(len(src)))
		if err != nil {
			return err
		}
		if locked {
			return newErr("program", KindProtected, nil)
		}
	}

	if cs.sstWrite {
		return sstWrite(ctx, t, cs, offset, src)
	}
	return pageProgram(ctx, t, cs, offset, src)
}

// pageProgram chunks src on page boundaries and, if the transport caps
// transaction size, on MaxWriteSize too, waiting for program-ready
// between chunks.
func pageProgram(ctx context.Context, t Transport, cs *ChipState, offset uint64, src []byte) error {
	r := regs{t}
	remaining := src
	cur := offset
	for len(remaining) > 0 {
		pageOff := cur % uint64(cs.PageSize)
		chunk := clampMin(uint64(cs.PageSize)-pageOff, uint64(len(remaining)))
		if cs.MaxWriteSize != 0 {
			chunk = clampMin(chunk, uint64(cs.MaxWriteSize))
		}

		wireAddr, uPage, remainInBank, err := route(ctx, t, cs, cur)
		if err != nil {
			return err
		}
		chunk = clampMin(chunk, remainInBank)

		if err := r.writeEnable(ctx); err != nil {
			return newErr("program", KindIO, err)
		}
		cmd := buildCommand(cs.ProgramOpcode, wireAddr, cs.AddrWidth, 0)
		flags := FlagBegin | FlagEnd
		if uPage {
			flags |= FlagUPage
		}
		if err := t.WriteThenRead(ctx, cmd, remaining[:chunk], nil, flags); err != nil {
			return newErr("program", KindIO, err)
		}
		if err := waitReady(ctx, t, cs, deadlineProgram); err != nil {
			return err
		}

		remaining = remaining[chunk:]
		cur += chunk
	}
	return nil
}

// sstWrite implements SST's auto address-increment program: the first
// word is written with a standalone opAAI_WP command carrying the start
// address, then subsequent words are written with address-less opAAI_WP
// commands that rely on the chip's internal address counter. Unaligned
// head and tail bytes fall back to single byte programs.
func sstWrite(ctx context.Context, t Transport, cs *ChipState, offset uint64, src []byte) error {
	r := regs{t}
	cur := offset
	remaining := src

	// A leading odd byte can't start a word write: program it alone with
	// opBP first, then continue on an even offset.
	if cur%2 != 0 && len(remaining) > 0 {
		if err := sstByteProgram(ctx, t, cs, cur, remaining[0]); err != nil {
			return err
		}
		cur++
		remaining = remaining[1:]
	}

	first := true
	for len(remaining) >= 2 {
		flags := FlagBegin | FlagEnd
		var cmd []byte
		if first {
			wireAddr, uPage, _, err := route(ctx, t, cs, cur)
			if err != nil {
				return err
			}
			if err := r.writeEnable(ctx); err != nil {
				return newErr("program", KindIO, err)
			}
			cmd = buildCommand(opAAI_WP, wireAddr, cs.AddrWidth, 0)
			if uPage {
				flags |= FlagUPage
			}
			first = false
		} else {
			// Subsequent words carry no address: the chip auto-increments
			// its internal pointer.
			cmd = []byte{opAAI_WP}
		}
		if err := t.WriteThenRead(ctx, cmd, remaining[:2], nil, flags); err != nil {
			return newErr("program", KindIO, err)
		}
		if err := waitReady(ctx, t, cs, deadlineProgram); err != nil {
			return err
		}
		remaining = remaining[2:]
		cur += 2
	}

	if !first {
		if err := r.writeDisable(ctx); err != nil {
			return newErr("program", KindIO, err)
		}
	}

	if len(remaining) == 1 {
		if err := sstByteProgram(ctx, t, cs, cur, remaining[0]); err != nil {
			return err
		}
	}
	return nil
}

// sstByteProgram programs a single byte with opBP: write-enable, issue
// opBP + address + the byte, wait program-ready, write-disable. Used for
// a leading odd-offset byte and a trailing unpaired tail byte in the
// SST byte/word path.
func sstByteProgram(ctx context.Context, t Transport, cs *ChipState, offset uint64, b byte) error {
	r := regs{t}
	if err := r.writeEnable(ctx); err != nil {
		return newErr("program", KindIO, err)
	}
	wireAddr, uPage, _, err := route(ctx, t, cs, offset)
	if err != nil {
		return err
	}
	cmd := buildCommand(opBP, wireAddr, cs.AddrWidth, 0)
	flags := FlagBegin | FlagEnd
	if uPage {
		flags |= FlagUPage
	}
	if err := t.WriteThenRead(ctx, cmd, []byte{b}, nil, flags); err != nil {
		return newErr("program", KindIO, err)
	}
	if err := waitReady(ctx, t, cs, deadlineProgram); err != nil {
		return err
	}
	if err := r.writeDisable(ctx); err != nil {
		return newErr("program", KindIO, err)
	}
	return nil
}
