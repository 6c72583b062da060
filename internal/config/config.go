package config

import (
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

type StoreConf struct {
	Path     string `json:",default=data/games"`
	InMemory bool   `json:",optional"`
	Disabled bool   `json:",optional"`
}

type Config struct {
	Name  string `json:",default=chess-local"`
	Addr  string `json:",default=:2888"`
	Mode  string `json:",default=pro,options=dev|test|pro"`
	Log   logx.LogConf
	Store StoreConf
}

// Load 按扩展名读取 YAML/JSON/TOML 配置
func Load(path string) (Config, error) {
	var c Config
	if err := conf.Load(path, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
