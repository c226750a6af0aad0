package util

import (
	"encoding/json"
)

// JSONUtil JSON工具类
type JSONUtil struct{}

// ToJSON 将对象转换为JSON字符串
func (j *JSONUtil) ToJSON(v interface{}) (string, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// FromJSON 将JSON字符串转换为对象
func (j *JSONUtil) FromJSON(jsonStr string, v interface{}) error {
	return json.Unmarshal([]byte(jsonStr), v)
}

// PrettyJSON 格式化JSON输出
func (j *JSONUtil) PrettyJSON(v interface{}) (string, error) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
