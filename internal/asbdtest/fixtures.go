// SPDX-License-Identifier: EPL-2.0

// Package asbdtest builds small in-memory audio files for probe tests.
package asbdtest

import (
	"bytes"
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
)

// WAV format tags used in the fmt chunk.
const (
	WAVFormatPCM   = 1
	WAVFormatFloat = 3
	WAVFormatALaw  = 6
	WAVFormatULaw  = 7

	WAVFormatExtensible = 0xFFFE
)

// ksDataFormatTail is the fixed part of the KSDATAFORMAT_SUBTYPE GUIDs that
// follows the two byte format tag.
var ksDataFormatTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// WAVFile returns a canonical 44 byte header RIFF/WAVE file holding frames
// silent frames.
func WAVFile(sampleRate, channels, bitsPerSample, audioFormat, frames int) []byte {
	buf := new(bytes.Buffer)

	blockAlign := channels * ((bitsPerSample + 7) / 8)
	byteRate := sampleRate * blockAlign
	dataSize := frames * blockAlign

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(audioFormat))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}

// WAVExtensibleFile is WAVFile with a 40 byte WAVE_FORMAT_EXTENSIBLE fmt
// chunk whose sub-format GUID carries subFormat.
func WAVExtensibleFile(sampleRate, channels, bitsPerSample, subFormat, frames int) []byte {
	buf := new(bytes.Buffer)

	blockAlign := channels * ((bitsPerSample + 7) / 8)
	byteRate := sampleRate * blockAlign
	dataSize := frames * blockAlign

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+(8+40)+(8+dataSize)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(40))
	binary.Write(buf, binary.LittleEndian, uint16(WAVFormatExtensible))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))
	binary.Write(buf, binary.LittleEndian, uint16(22))            // cbSize
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample)) // valid bits
	binary.Write(buf, binary.LittleEndian, uint32(0))             // channel mask
	binary.Write(buf, binary.LittleEndian, uint16(subFormat))
	buf.Write(ksDataFormatTail)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}

// AIFFFile returns a FORM/AIFF file with a COMM chunk followed by an SSND
// chunk of frames silent frames.
func AIFFFile(sampleRate, channels, bitsPerSample, frames int) []byte {
	buf := new(bytes.Buffer)

	dataSize := frames * channels * ((bitsPerSample + 7) / 8)
	commSize := 18
	ssndSize := 8 + dataSize
	formSize := 4 + (8 + commSize) + (8 + ssndSize)

	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(formSize))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	binary.Write(buf, binary.BigEndian, uint32(commSize))
	binary.Write(buf, binary.BigEndian, uint16(channels))
	binary.Write(buf, binary.BigEndian, uint32(frames))
	binary.Write(buf, binary.BigEndian, uint16(bitsPerSample))
	rate := goaudio.IntToIEEEFloat(sampleRate)
	buf.Write(rate[:])

	buf.WriteString("SSND")
	binary.Write(buf, binary.BigEndian, uint32(ssndSize))
	binary.Write(buf, binary.BigEndian, uint32(0)) // offset
	binary.Write(buf, binary.BigEndian, uint32(0)) // block size
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}
