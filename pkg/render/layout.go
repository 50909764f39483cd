package render

// Cover scales a source of size srcW x srcH so it fills a destination of size
// dstW x dstH while keeping its aspect ratio, and centers it. The overflow is
// cropped by the destination bounds. It returns the scale and the top left
// offset of the scaled source.
func Cover(srcW, srcH, dstW, dstH float64) (scale, offsetX, offsetY float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scale = dstW / srcW
	if dstW/dstH <= srcW/srcH {
		scale = dstH / srcH
	}
	offsetX = (dstW - srcW*scale) / 2
	offsetY = (dstH - srcH*scale) / 2
	return scale, offsetX, offsetY
}
