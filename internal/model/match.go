package model

import (
	"bytes"
	"sort"
)

// Span は 1 件の書き換え範囲を行・桁・バイトオフセットで表します。
// 行と桁は 1 始まり、桁はバイト単位です。
type Span struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
	ByteStart int `json:"byte_start"`
	ByteEnd   int `json:"byte_end"`
}

// LineIndex はバイトオフセットから行・桁を引くための行頭オフセット表です。
type LineIndex struct {
	offsets []int
}

// NewLineIndex は data の各行頭オフセットを記録します。
func NewLineIndex(data []byte) LineIndex {
	offsets := make([]int, 0, bytes.Count(data, []byte{'\n'})+2)
	offsets = append(offsets, 0)
	for i, b := range data {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	if offsets[len(offsets)-1] != len(data) {
		offsets = append(offsets, len(data))
	}
	return LineIndex{offsets: offsets}
}

// Position は offset の行と桁を返します。
func (x LineIndex) Position(offset int) (line, col int) {
	idx := sort.Search(len(x.offsets), func(i int) bool { return x.offsets[i] > offset })
	if idx == 0 {
		return 1, offset + 1
	}
	return idx, offset - x.offsets[idx-1] + 1
}

// Span は [start, start+length) の範囲を Span に変換します。
func (x LineIndex) Span(start, length int) Span {
	line, col := x.Position(start)
	endLine, endCol := x.Position(start + length)
	return Span{
		StartLine: line,
		StartCol:  col,
		EndLine:   endLine,
		EndCol:    endCol,
		ByteStart: start,
		ByteEnd:   start + length,
	}
}
