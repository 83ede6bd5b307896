// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides pixel buffers with a described format and
// scoped lock/unlock access.
//
// # Surfaces
//
// A [Surface] is the capability interface consumed by the compositor:
// size, pitch, format, scale mode, pixel reads and region locks. The
// only implementation is [Buffer]; its storage strategy is one of
// several tagged [Backend] alternatives selected by [New] from the
// creation [Params]:
//
//   - Software: the surface owns its pixel memory
//   - External: the caller supplies the pixel memory and pitch
//   - Streamed: an owned staging buffer pushed to an [Uploader] after
//     every write lock, for GPU-resident targets
//
// # Locking
//
// Pixel memory is only reachable through a [Region]. At most one region
// is active at a time:
//
//	r, err := s.LockRegion(surface.LockReadWrite, blit.Rt(0, 0, 16, 16))
//	if err != nil {
//	    return err
//	}
//	defer s.Unlock()
//
//	px := r.Pixel(3, 4)
//
// A second lock while locked fails with [ErrLocked] rather than
// aliasing the buffer.
//
// # Pixel formats
//
// [PixelFormat] describes channel masks, shifts and bit depths. Surfaces
// are created as [BGR8] or [BGRA8]; foreign formats are described with
// [FromForeign] and can be mapped to GPU texture formats with
// [PixelFormat.TextureFormat].
package surface
