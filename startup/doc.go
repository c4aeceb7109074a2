// Package startup contains the one-shot drawing operations that prepare the
// display before the main loop starts. None of the functions are called again
// once the loop is running.
//
// The functions should be called while the display is in forced blank.
// InitialiseDisplay() turns forced blank on and EndBlank() turns it off again.
package startup
