package entities

import "slices"

// Chunk is a named group of lectures used to partition the question bank.
type Chunk struct {
	ID       int    `mapstructure:"id" json:"id"`
	Name     string `mapstructure:"name" json:"name"`
	Lectures []int  `mapstructure:"lectures" json:"lectures"`
}

// DefaultChunks returns the built-in chunk layout.
func DefaultChunks() []Chunk {
	return []Chunk{
		{ID: 1, Name: "الجزء الأول", Lectures: []int{1, 2, 3}},
		{ID: 2, Name: "الجزء الثاني", Lectures: []int{4, 5, 6}},
		{ID: 3, Name: "الجزء الثالث", Lectures: []int{7, 8, 9}},
	}
}

// Contains reports whether the lecture belongs to the chunk.
func (c Chunk) Contains(lecture int) bool {
	return slices.Contains(c.Lectures, lecture)
}
