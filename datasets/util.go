package datasets

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// hasColumn reports whether the DataFrame carries a column with the given
// name.
func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// stamp writes a float-valued column into every row of df, adding the column
// if it does not exist yet.
func stamp(df dataframe.DataFrame, name string, value float64) dataframe.DataFrame {
	vals := make([]float64, df.Nrow())
	for i := range vals {
		vals[i] = value
	}
	return df.Mutate(series.New(vals, series.Float, name))
}

// stampInt is stamp for integer-valued columns.
func stampInt(df dataframe.DataFrame, name string, value int) dataframe.DataFrame {
	vals := make([]int, df.Nrow())
	for i := range vals {
		vals[i] = value
	}
	return df.Mutate(series.New(vals, series.Int, name))
}

// toFloat32 converts the dynamically typed targets that come out of a
// description or metadata table into a tensor-ready float32.
func toFloat32(v any) (float32, error) {
	switch t := v.(type) {
	case float64:
		return float32(t), nil
	case float32:
		return t, nil
	case int:
		return float32(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("target %v (%T) is not numeric", v, v)
	}
}

// intAt reads an integer cell from a metadata table, tolerating float-typed
// columns produced by type inference.
func intAt(df dataframe.DataFrame, row int, col string) (int, error) {
	elem := df.Col(col).Elem(row)
	if v, err := elem.Int(); err == nil {
		return v, nil
	}
	return int(elem.Float()), nil
}
