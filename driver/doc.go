// Package driver is the main loop of the reticle demo. The loop is
// synchronised to the refresh interrupt of the device and runs exactly once per
// refresh interval:
//
//	wait for refresh -> sample input -> update cursor -> present reticle -> plot pixel
//
// The only suspension point is the wait for refresh. If an iteration of the
// loop takes longer than a refresh interval the missed refresh is dropped and
// the loop waits for the next one.
//
// The interrupt handler runs in the refresh generator's goroutine. It shares
// only the vblank bit of the BIOS interrupt flags with the main loop. That bit
// is the "refresh pending" flag: the handler sets it and the wait clears it.
package driver
