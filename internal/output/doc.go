// Package output provides the sinks pipeline stages are written to.
//
// A Sink receives every stage buffer under its stage name. DirSink writes
// one image file per stage, ArchiveSink packs all stages into a single
// zstd-compressed tar stream, and Discard drops them.
package output
