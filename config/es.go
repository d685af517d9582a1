package config

import "strconv"

type Es struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (e Es) Dsn() string {
	return "http://" + e.Host + ":" + strconv.Itoa(e.Port)
}
