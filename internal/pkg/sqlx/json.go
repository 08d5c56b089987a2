package sqlx

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONColumn 以 JSON 形式存进单个列的值，实现了 driver.Valuer 和 sql.Scanner
type JSONColumn[T any] struct {
	Val T
	// Valid 为 false 时落库为 NULL
	Valid bool
}

func NewJSONColumn[T any](val T) JSONColumn[T] {
	return JSONColumn[T]{Val: val, Valid: true}
}

func (j JSONColumn[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	res, err := json.Marshal(j.Val)
	return string(res), err
}

func (j *JSONColumn[T]) Scan(src any) error {
	var bs []byte
	switch val := src.(type) {
	case nil:
		return nil
	case []byte:
		bs = val
	case string:
		bs = []byte(val)
	default:
		return fmt.Errorf("JSONColumn.Scan 不支持 src 类型 %T", src)
	}
	if err := json.Unmarshal(bs, &j.Val); err != nil {
		return err
	}
	j.Valid = true
	return nil
}
