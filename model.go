package posegt

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ObjectModel defines the axis aligned 3D bounding box of an object category
// in the object's own coordinate frame.  The box origin corner is at
// (MinX, MinY, MinZ) and extends SizeX/SizeY/SizeZ along each axis.  Values
// are in the dataset's model units, typically millimeters for BOP datasets
type ObjectModel struct {
	MinX  float64 `json:"min_x"`
	MinY  float64 `json:"min_y"`
	MinZ  float64 `json:"min_z"`
	SizeX float64 `json:"size_x"`
	SizeY float64 `json:"size_y"`
	SizeZ float64 `json:"size_z"`
}

// ModelTable maps object category ID's to their ObjectModel.  It is built
// once at load time and must not be modified afterwards, read only access
// from multiple goroutines is safe without locking
type ModelTable struct {
	models map[int]ObjectModel
}

// NewModelTable creates a ModelTable from the given models keyed by
// category ID
func NewModelTable(models map[int]ObjectModel) *ModelTable {
	t := &ModelTable{
		models: make(map[int]ObjectModel, len(models)),
	}

	for id, m := range models {
		t.models[id] = m
	}

	return t
}

// LoadObjectModels reads object bounding box models from the given JSON
// file.  The file follows the BOP models_info.json format, a JSON object
// keyed by category ID with min_x/min_y/min_z/size_x/size_y/size_z fields
// per entry.  Extra fields such as diameter are ignored
func LoadObjectModels(file string) (*ModelTable, error) {

	// read the file
	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	// keys are category ID's as strings in the BOP format
	var raw map[string]ObjectModel

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing models file: %w", err)
	}

	models := make(map[int]ObjectModel, len(raw))

	for key, m := range raw {
		id, err := strconv.Atoi(key)

		if err != nil {
			return nil, fmt.Errorf("model key %q is not a category ID: %w", key, err)
		}

		models[id] = m
	}

	return NewModelTable(models), nil
}

// Lookup returns the ObjectModel for the given category ID.  An
// ErrModelNotFound error is returned when the category has no model loaded
func (t *ModelTable) Lookup(categoryID int) (ObjectModel, error) {

	m, ok := t.models[categoryID]

	if !ok {
		return ObjectModel{}, fmt.Errorf("category %d: %w", categoryID, ErrModelNotFound)
	}

	return m, nil
}

// Len returns the number of models in the table
func (t *ModelTable) Len() int {
	return len(t.models)
}
