package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MesesDoAno é a lista fixa de nomes de meses em português usada nos
// registros de metas (campo "mes").
var MesesDoAno = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// brDatePattern reconhece datas no formato dd/mm/yyyy com hora opcional
// (HH:mm ou HH:mm:ss).
var brDatePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})(?:\s+(\d{2}):(\d{2})(?::(\d{2}))?)?$`)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseFlexibleDate aceita os formatos de data que aparecem nos registros do
// backend: ISO ("2006-01-02" ou RFC3339), datetime separado por espaço
// ("2006-01-02 15:04:05") e o formato brasileiro "dd/mm/yyyy" com hora
// opcional. Retorna nil para qualquer entrada que não possa ser interpretada,
// nunca retorna erro.
func ParseFlexibleDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	// dd/mm/yyyy [HH:mm[:ss]]
	if m := brDatePattern.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		hour, minute, second := 0, 0, 0
		if m[4] != "" {
			hour, _ = strconv.Atoi(m[4])
			minute, _ = strconv.Atoi(m[5])
		}
		if m[6] != "" {
			second, _ = strconv.Atoi(m[6])
		}

		if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
			return nil
		}

		date := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
		// time.Date normaliza estouros (ex: 31/02 vira 03/03); rejeitar nesses casos
		if date.Day() != day || int(date.Month()) != month {
			return nil
		}
		return &date
	}

	// "2006-01-02 15:04:05" é normalizado trocando o espaço por "T"
	normalized := raw
	if strings.Contains(normalized, " ") {
		normalized = strings.Replace(normalized, " ", "T", 1)
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if date, err := time.ParseInLocation(layout, normalized, time.Local); err == nil {
			return &date
		}
	}

	return nil
}

// MonthStart trunca a data para o primeiro dia do mês, no fuso local.
func MonthStart(raw string) *time.Time {
	date := ParseFlexibleDate(raw)
	if date == nil {
		return nil
	}

	start := MonthStartOf(*date)
	return &start
}

// MonthStartOf trunca um time.Time já parseado para o início do mês.
func MonthStartOf(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.Local)
}

// MonthNameToNumber converte o nome do mês em português (case-insensitive)
// para o número 1..12. Retorna 0 quando o nome não é reconhecido.
func MonthNameToNumber(name string) int {
	name = strings.TrimSpace(name)
	for i, mes := range MesesDoAno {
		if strings.EqualFold(mes, name) {
			return i + 1
		}
	}
	return 0
}

// BuildMonthRange gera a lista inclusiva de meses no formato "MM/YYYY" entre
// duas datas. Retorna lista vazia quando algum limite é inválido ou quando o
// fim antecede o início.
func BuildMonthRange(start, end string) []string {
	startMonth := MonthStart(start)
	endMonth := MonthStart(end)
	if startMonth == nil || endMonth == nil {
		return []string{}
	}

	return MonthRangeBetween(*startMonth, *endMonth)
}

// MonthRangeBetween é a variante de BuildMonthRange para datas já parseadas.
func MonthRangeBetween(start, end time.Time) []string {
	months := []string{}

	current := MonthStartOf(start)
	last := MonthStartOf(end)

	for !current.After(last) {
		months = append(months, FormatMonthKey(current))
		current = current.AddDate(0, 1, 0)
	}

	return months
}

// FormatMonthKey formata a chave de mês usada nas séries ("MM/YYYY").
func FormatMonthKey(date time.Time) string {
	return fmt.Sprintf("%02d/%04d", int(date.Month()), date.Year())
}
