// Package rom reads program images from disk.
//
// Two formats are understood: a raw binary that is copied into the program
// region as is, and an iNES file whose PRG ROM is extracted the way mapper 0
// lays it out in $8000-$FFFF.
package rom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic        = 0x1a53454e
	inesHeaderSize   = 16
	trainerSizeBytes = 512
	prgBankSizeBytes = 0x4000
)

var (
	ErrInvalidHeader     = errors.New("invalid iNES header")
	ErrUnsupportedMapper = errors.New("unsupported mapper")
)

type Format uint8

const (
	FormatRaw Format = iota
	FormatINES
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatINES:
		return "iNES"
	}
	return "unknown"
}

// Image is a program ready to be placed at the start of the program region.
type Image struct {
	Format  Format
	Program []uint8

	// iNES only
	PrgBanks uint8
	MapperID uint8
}

// Load reads the image at path.
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read detects the format of the data in r and extracts the program.
func Read(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the image: %w", err)
	}

	if len(data) >= 4 && binary.LittleEndian.Uint32(data) == inesMagic {
		return readINES(data)
	}
	return &Image{Format: FormatRaw, Program: data}, nil
}

func readINES(data []uint8) (*Image, error) {
	var header struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		_          [8]uint8
	}
	r := bytes.NewReader(data)
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("couldn't read the header: %w", errors.Join(ErrInvalidHeader, err))
	}
	if header.PrgRomSize == 0 || header.PrgRomSize > 2 {
		return nil, fmt.Errorf("%w: %d PRG banks", ErrInvalidHeader, header.PrgRomSize)
	}

	// mapper ID nibbles live in the high bits of flags6 (low) and flags7 (high)
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)
	if mapperID != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, mapperID)
	}

	offset := inesHeaderSize
	if header.Flags6&0x4 != 0 {
		offset += trainerSizeBytes
	}

	prgSize := int(header.PrgRomSize) * prgBankSizeBytes
	if len(data) < offset+prgSize {
		return nil, fmt.Errorf("couldn't read PRG ROM: expected %d bytes, got %d", prgSize, len(data)-offset)
	}
	prg := data[offset : offset+prgSize]

	// a single bank is mirrored into $C000-$FFFF so the vectors are in place
	program := make([]uint8, 2*prgBankSizeBytes)
	copy(program, prg)
	if header.PrgRomSize == 1 {
		copy(program[prgBankSizeBytes:], prg)
	}

	return &Image{
		Format:   FormatINES,
		Program:  program,
		PrgBanks: header.PrgRomSize,
		MapperID: mapperID,
	}, nil
}
