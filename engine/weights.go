package engine

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Weight file format constants
const (
	weightsMagic   = 0x43414957 // "CAIW"
	weightsVersion = 1
)

// weightsHeader is the header of the weight file.
type weightsHeader struct {
	Magic   uint32
	Version uint32
	L1Size  uint32
	L2Size  uint32
	L3Size  uint32
	L4Size  uint32
}

// LoadWeights loads network weights from a binary file.
// File format, all little-endian:
//   - Header: Magic, Version, L1Size..L4Size (6 x uint32)
//   - Per layer, input to output: weights (out*in float32), bias (out float32)
func (n *Network) LoadWeights(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()
	return n.LoadWeightsFromReader(f)
}

// LoadWeightsFromReader loads network weights from an io.Reader.
func (n *Network) LoadWeightsFromReader(r io.Reader) error {
	var header weightsHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if header.Magic != weightsMagic {
		return fmt.Errorf("invalid magic number: expected %x, got %x", weightsMagic, header.Magic)
	}
	if header.Version != weightsVersion {
		return fmt.Errorf("unsupported version: expected %d, got %d", weightsVersion, header.Version)
	}
	sizes := [4]uint32{header.L1Size, header.L2Size, header.L3Size, header.L4Size}
	want := [4]uint32{L1Size, L2Size, L3Size, L4Size}
	if sizes != want {
		return fmt.Errorf("layer size mismatch: expected %v, got %v", want, sizes)
	}

	for i := range n.layers {
		l := &n.layers[i]
		if err := binary.Read(r, binary.LittleEndian, l.weights); err != nil {
			return fmt.Errorf("failed to read layer %d weights: %w", i+1, err)
		}
		if err := binary.Read(r, binary.LittleEndian, l.bias); err != nil {
			return fmt.Errorf("failed to read layer %d bias: %w", i+1, err)
		}
	}
	return nil
}

// SaveWeights saves network weights to a binary file.
func (n *Network) SaveWeights(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create weights file: %w", err)
	}
	defer f.Close()

	header := weightsHeader{
		Magic:   weightsMagic,
		Version: weightsVersion,
		L1Size:  L1Size,
		L2Size:  L2Size,
		L3Size:  L3Size,
		L4Size:  L4Size,
	}
	if err := binary.Write(f, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range n.layers {
		l := &n.layers[i]
		if err := binary.Write(f, binary.LittleEndian, l.weights); err != nil {
			return fmt.Errorf("failed to write layer %d weights: %w", i+1, err)
		}
		if err := binary.Write(f, binary.LittleEndian, l.bias); err != nil {
			return fmt.Errorf("failed to write layer %d bias: %w", i+1, err)
		}
	}
	return nil
}
