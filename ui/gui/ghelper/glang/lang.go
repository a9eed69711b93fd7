package glang

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed lang/*.json
var langFS embed.FS

type LangType int

const (
	EN LangType = iota
	RU
)

func LangFromString(s string) LangType {
	if s == "ru" {
		return RU
	}
	return EN
}

func (l LangType) String() string {
	switch l {
	case RU:
		return "ru"
	default:
	}
	return "en"
}

type GUILangWorker struct {
	lang LangType
	dict map[string]string
}

func NewGUILangWorker(l LangType) (*GUILangWorker, error) {
	lw := &GUILangWorker{}
	if err := lw.SetLang(l); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	data, err := langFS.ReadFile("lang/" + l.String() + ".json")
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode %s dictionary: %w", l, err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

// T returns the translation, or the key itself when it is missing.
func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key
}

// Tf formats the translation with args.
func (lw *GUILangWorker) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(lw.T(key), args...)
}
