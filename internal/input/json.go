package input

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/limaJavier/councils/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type jsonRow struct {
	Teacher string         `mapstructure:"Docente"`
	Cells   map[string]any `mapstructure:",remain"`
}

// ReadJSON reads an array of objects shaped like CSV rows, e.g. [{"Docente": "Rossi", "1A": "x"}].
// Class keys are declared in identifier order since objects carry no column order.
func ReadJSON(reader io.Reader, marker *Marker) (Source, error) {
	var inputJson []map[string]any
	if err := json.NewDecoder(reader).Decode(&inputJson); err != nil {
		return Source{}, fmt.Errorf("cannot decode rows: %w", err)
	}

	source := Source{
		Classes: make([]string, 0),
		Rows:    make([]model.Row, 0, len(inputJson)),
	}
	declared := make(map[string]bool)

	for i, object := range inputJson {
		var raw jsonRow
		if err := mapstructure.Decode(object, &raw); err != nil {
			return Source{}, fmt.Errorf("invalid row %d: %w", i, err)
		}
		if _, ok := lo.FindKeyBy(object, func(key string, _ any) bool { return strings.EqualFold(key, TeacherColumn) }); !ok {
			return Source{}, fmt.Errorf("row %d: %w", i, ErrMissingTeacherColumn)
		}

		labels := lo.Filter(lo.Keys(raw.Cells), func(key string, _ int) bool { return model.LooksLikeClassLabel(strings.TrimSpace(key)) })
		slices.Sort(labels)

		row := model.Row{Teacher: strings.TrimSpace(raw.Teacher)}
		for _, label := range labels {
			name := strings.TrimSpace(label)
			if !declared[name] {
				declared[name] = true
				source.Classes = append(source.Classes, name)
			}
			marked, err := marker.Marks(cellText(raw.Cells[label]))
			if err != nil {
				return Source{}, err
			}
			if marked {
				row.Classes = append(row.Classes, name)
			}
		}
		source.Rows = append(source.Rows, row)
	}

	slices.SortFunc(source.Classes, compareLabels)
	return source, nil
}

// JSON cells may hold strings, numbers or booleans; false and null read as blank
func cellText(value any) string {
	switch value := value.(type) {
	case nil:
		return ""
	case bool:
		if !value {
			return ""
		}
		return "x"
	case string:
		return value
	}
	return fmt.Sprint(value)
}

func compareLabels(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}
