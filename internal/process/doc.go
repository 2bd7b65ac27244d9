// Package process stops the headless browser started for PDF printing,
// including the renderer and GPU helpers it forks.
package process
