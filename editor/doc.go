// Package editor turns single-letter text commands into operations on a
// pixelgrid.Grid and reports the outcome as user-facing text.
//
// Commands (upper-case only):
//
//	I M N   create an M×N image, every pixel 'O', and show it
//	C       clear the image back to 'O'
//	L X Y C colour pixel (X,Y) with C
//	F X Y C fill the region containing (X,Y) with C
//	T       transpose the image
//	S       show the image
//	X       exit
//	help    list the commands
//
// Every rejected command is returned as a *CommandError: its Error() is the
// message to show the user and it unwraps to one of the package sentinels,
// so callers can branch with errors.Is. X returns ErrQuit.
//
// An Editor holds at most one image and is not safe for concurrent use.
package editor
