package logger_test

import (
	"testing"

	"quoteintake/pkg/logger"
)

func TestMaskEmail(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected string
	}{
		{"Regular", "maria@example.com", "m***a@example.com"},
		{"TwoChars", "ab@example.com", "a*@example.com"},
		{"SingleChar", "a@example.com", "a@example.com"},
		{"NoAt", "maria", "m***a"},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := logger.MaskEmail(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestMaskPhone(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected string
	}{
		{"Mobile", "(11) 98765-4321", "(**) *****-4321"},
		{"Landline", "(11) 3333-4444", "(**) ****-4444"},
		{"Short", "123", "123"},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := logger.MaskPhone(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
