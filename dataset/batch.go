package dataset

import (
	"fmt"
)

// Batch concatenates a fixed number of training items into contiguous
// input and target tensors for feeding a training step.  All items in a
// batch must share the same input and ground truth shapes
type Batch struct {
	// inputs holds the concatenated input tensors
	inputs []float32
	// targets holds the concatenated ground truth tensors
	targets []float32
	// size is the batch capacity
	size int
	// inputSize and targetSize are the per item tensor lengths
	inputSize  int
	targetSize int
	// itemCnt is a counter for how many items have been added with Add()
	itemCnt int
}

// NewBatch creates a batch holding batchSize items of the given per item
// input and target tensor lengths
func NewBatch(batchSize, inputSize, targetSize int) *Batch {

	return &Batch{
		inputs:     make([]float32, batchSize*inputSize),
		targets:    make([]float32, batchSize*targetSize),
		size:       batchSize,
		inputSize:  inputSize,
		targetSize: targetSize,
		itemCnt:    0,
	}
}

// Add an item to the batch
func (b *Batch) Add(item *Item) error {

	// check if batch is full
	if b.itemCnt >= b.size {
		return fmt.Errorf("batch full")
	}

	if len(item.Input) != b.inputSize || len(item.GroundTruth.Data) != b.targetSize {
		return fmt.Errorf("item does not match batch shape")
	}

	copy(b.inputs[b.itemCnt*b.inputSize:], item.Input)
	copy(b.targets[b.itemCnt*b.targetSize:], item.GroundTruth.Data)

	b.itemCnt++
	return nil
}

// Len returns the number of items added to the batch
func (b *Batch) Len() int {
	return b.itemCnt
}

// Full reports whether the batch has reached capacity
func (b *Batch) Full() bool {
	return b.itemCnt >= b.size
}

// InputAt returns the input tensor for the given item number.  idx starts
// counting from 0 to (batchsize-1)
func (b *Batch) InputAt(idx int) ([]float32, error) {

	if idx < 0 || idx >= b.itemCnt {
		return nil, fmt.Errorf("index %d out of range [0-%d)", idx, b.itemCnt)
	}

	offset := idx * b.inputSize

	return b.inputs[offset : offset+b.inputSize], nil
}

// TargetAt returns the ground truth tensor for the given item number.  idx
// starts counting from 0 to (batchsize-1)
func (b *Batch) TargetAt(idx int) ([]float32, error) {

	if idx < 0 || idx >= b.itemCnt {
		return nil, fmt.Errorf("index %d out of range [0-%d)", idx, b.itemCnt)
	}

	offset := idx * b.targetSize

	return b.targets[offset : offset+b.targetSize], nil
}

// Inputs returns the concatenated input tensor of all added items
func (b *Batch) Inputs() []float32 {
	return b.inputs[:b.itemCnt*b.inputSize]
}

// Targets returns the concatenated ground truth tensor of all added items
func (b *Batch) Targets() []float32 {
	return b.targets[:b.itemCnt*b.targetSize]
}

// Clear the batch so it can be reused again
func (b *Batch) Clear() {
	// just reset the counter, the underlying tensors get overwritten when
	// Add() is called with new items
	b.itemCnt = 0
}
