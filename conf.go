package carcare

import (
	"io/ioutil"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Yaml(filePath string, out interface{}) (err error) {
	conf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "read %s", filePath)
	}

	if err = yaml.Unmarshal(conf, out); err != nil {
		return errors.Wrapf(err, "parse yaml %s", filePath)
	}
	return nil
}

func Json(filePath string, out interface{}) (err error) {
	conf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "read %s", filePath)
	}

	if err = json.Unmarshal(conf, out); err != nil {
		return errors.Wrapf(err, "parse json %s", filePath)
	}
	return nil
}
