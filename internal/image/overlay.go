package image

// Overlay composites overlay onto bg at top-left offset (x, y) using
// straight-alpha blending:
//
//	dst.rgb = overlay.rgb*a/255 + dst.rgb*(255-a)/255
//
// The destination alpha channel is left untouched; video frames are treated
// as opaque. Overlay pixels falling outside bg are silently clipped, so any
// offset is safe, including fully negative or fully beyond the frame. The
// valid row and column ranges are computed once up front; the per-pixel loop
// only branches on the overlay alpha (skip at 0, copy at 255).
func Overlay(bg, overlay *Buffer, x, y int) {
	if bg == nil || overlay == nil {
		return
	}

	// Overlay-space sub-rectangle that lands inside bg.
	ox0, oy0 := 0, 0
	if x < 0 {
		ox0 = -x
	}
	if y < 0 {
		oy0 = -y
	}
	ox1 := overlay.width
	if x+ox1 > bg.width {
		ox1 = bg.width - x
	}
	oy1 := overlay.height
	if y+oy1 > bg.height {
		oy1 = bg.height - y
	}
	if ox0 >= ox1 || oy0 >= oy1 {
		return
	}

	for oy := oy0; oy < oy1; oy++ {
		srcRow := oy * overlay.width * 4
		dstRow := (y + oy) * bg.width * 4
		for ox := ox0; ox < ox1; ox++ {
			si := srcRow + ox*4
			a := uint32(overlay.data[si+3])
			if a == 0 {
				continue
			}
			di := dstRow + (x+ox)*4
			if a == 255 {
				bg.data[di+0] = overlay.data[si+0]
				bg.data[di+1] = overlay.data[si+1]
				bg.data[di+2] = overlay.data[si+2]
				continue
			}
			inv := 255 - a
			bg.data[di+0] = uint8((uint32(overlay.data[si+0])*a + uint32(bg.data[di+0])*inv + 127) / 255)
			bg.data[di+1] = uint8((uint32(overlay.data[si+1])*a + uint32(bg.data[di+1])*inv + 127) / 255)
			bg.data[di+2] = uint8((uint32(overlay.data[si+2])*a + uint32(bg.data[di+2])*inv + 127) / 255)
		}
	}
}
