/*
go-smartface provides the pose qualification and crop logic used for
automated face capture.  Given a frame and a set of normalized face mesh
landmarks produced by an upstream landmark model, it estimates the head
pose with simple geometric heuristics, gates the frame against configured
yaw/pitch tolerances and a per session capture quota, and extracts a
padded face crop from frames that qualify.

The library performs no inference itself.  Landmarks are supplied by an
external face mesh model (468 point topology), see the simulate
subdirectory for a deterministic stand-in used by the examples and tests.

See example code and usage in the examples subdirectory.
*/
package smartface
