package glang

import (
	"encoding/json"
	"testing"
)

func TestDictionariesHaveSameKeys(t *testing.T) {
	load := func(l LangType) map[string]string {
		data, err := langFS.ReadFile("lang/" + l.String() + ".json")
		if err != nil {
			t.Fatalf("read %s: %v", l, err)
		}
		m := map[string]string{}
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("decode %s: %v", l, err)
		}
		return m
	}
	en, ru := load(EN), load(RU)
	for k := range en {
		if _, ok := ru[k]; !ok {
			t.Errorf("ru is missing %q", k)
		}
	}
	for k := range ru {
		if _, ok := en[k]; !ok {
			t.Errorf("en is missing %q", k)
		}
	}
}

func TestTranslate(t *testing.T) {
	lw, err := NewGUILangWorker(EN)
	if err != nil {
		t.Fatal(err)
	}
	if got := lw.T("menu.start"); got != "Start" {
		t.Fatalf("T(menu.start) = %q", got)
	}
	if got := lw.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key = %q", got)
	}
	if got := lw.Tf("congrats.time", "00:01:02"); got != "Your time: 00:01:02" {
		t.Fatalf("Tf = %q", got)
	}
	if err := lw.SetLang(RU); err != nil || lw.GetLang() != RU {
		t.Fatalf("SetLang(RU): %v", err)
	}
	if got := lw.T("menu.start"); got != "Старт" {
		t.Fatalf("ru T(menu.start) = %q", got)
	}
}

func TestLangFromString(t *testing.T) {
	if LangFromString("ru") != RU || LangFromString("de") != EN {
		t.Fatalf("LangFromString mismatch")
	}
}
