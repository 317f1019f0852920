// Package tracker implements project, task, and comment management with
// project membership. Deletes never cascade: dependent rows surface as
// conflict errors and must be removed first.
package tracker
