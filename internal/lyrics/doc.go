// Package lyrics owns the word-timing core: line segmentation of free
// transcriptions, 1:1 mapping of aligned observations onto known lyric text,
// multi-pass timestamp anomaly repair, section label placement, and assembly
// of the final display document.
//
// The package is a set of pure transformations over an in-memory word
// sequence. It knows nothing about the alignment engine or the filesystem;
// callers feed it Observations and receive a Document ready to serialize.
package lyrics
