// Package utils provides small helpers shared across the scan-verifier packages:
// numeric conversion for loosely typed input and the text normalization
// (trim + Unicode case fold) used for identifier and header matching.
package utils
