package utils

import (
	"errors"

	"github.com/tidwall/gjson"
)

var (
	ErrGjsonNotFound  = errors.New("specified path does not exist")
	ErrGjsonWrongType = errors.New("wrong type")
)

func GjsonGet(json []byte, path string) (gjson.Result, error) {
	result := gjson.GetBytes(json, path)
	if !result.Exists() {
		return result, ErrGjsonNotFound
	}

	return result, nil
}

// GjsonLastValue returns the "value" field of the last element of the array
// at path, or an error if the path is missing or not an array.
func GjsonLastValue(json []byte, path string) (int64, error) {
	result, err := GjsonGet(json, path)
	if err != nil {
		return 0, err
	}
	if !result.IsArray() {
		return 0, ErrGjsonWrongType
	}
	arr := result.Array()
	if len(arr) == 0 {
		return 0, nil
	}
	return arr[len(arr)-1].Get("value").Int(), nil
}
