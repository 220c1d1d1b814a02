// Package messages holds the user-facing text of the calculator. Every
// string printed on the console is looked up here by key, so the wording
// lives in one table and the calling code deals only in keys.
//
// Numbers are always pre-formatted by the caller and passed as %s
// arguments; the printer must not apply locale-specific digit grouping.
package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lang is the language of the message table.
var Lang = language.Russian

// Message keys.
const (
	MenuRule      = "menu.rule"
	MenuTitle     = "menu.title"
	MenuCalculate = "menu.calculate"
	MenuSelfTest  = "menu.selftest"
	MenuExit      = "menu.exit"
	MenuDivider   = "menu.divider"
	MenuPrompt    = "menu.prompt"
	MenuInvalid   = "menu.invalid"
	Farewell      = "farewell"

	CalcHeader       = "calc.header"
	PromptType       = "prompt.type"
	PromptSeverity   = "prompt.severity"
	PromptDamage     = "prompt.damage"
	PromptInfoValue  = "prompt.infovalue"
	PromptPartCoeff  = "prompt.partcoeff"
	RetryRange15     = "retry.range15"
	RetryNonNegative = "retry.nonnegative"
	RetryPartCoeff   = "retry.partcoeff"
	RetryCaseType    = "retry.casetype"
	TooManyAttempts  = "calc.toomanyattempts"
	ResultHeader     = "result.header"
	ResultReward     = "result.reward"
	ResultPercent    = "result.percent"
	ResultFooter     = "result.footer"
	CategoryLine     = "result.category"
	CoefficientLine  = "result.coefficients"

	SelfTestHeader     = "selftest.header"
	SelfTestFooter     = "selftest.footer"
	SelfTestPassed     = "selftest.passed"
	SelfTestFailedWant = "selftest.failedwant"
	SelfTestFailedGot  = "selftest.failedgot"
	SelfTestCriminal   = "selftest.criminal"
	SelfTestMinimum    = "selftest.minimum"
	SelfTestMaximum    = "selftest.maximum"
)

var table = map[string]string{
	MenuRule:      "==========================================",
	MenuTitle:     " КАЛЬКУЛЯТОР ВОЗНАГРАЖДЕНИЯ (УИБО-15-24)",
	MenuCalculate: "1. Выполнение расчета (ввод данных)",
	MenuSelfTest:  "2. Автоматическое тестирование",
	MenuExit:      "3. Выход",
	MenuDivider:   "------------------------------------------",
	MenuPrompt:    "Выберите действие: ",
	MenuInvalid:   "Ошибка: Неверный пункт меню. Попробуйте снова.",
	Farewell:      "Завершение работы программы...",

	CalcHeader:       "--- РЕЖИМ РАСЧЕТА ---",
	PromptType:       "Введите вид производства (уголовное/административное/гражданское): ",
	PromptSeverity:   "Тяжесть правонарушения (1-5): ",
	PromptDamage:     "Сумма ущерба (руб): ",
	PromptInfoValue:  "Ценность информации (1-5): ",
	PromptPartCoeff:  "Коэффициент участия (0.1 - 1.0): ",
	RetryRange15:     "Ошибка! Введите число от 1 до 5: ",
	RetryNonNegative: "Ошибка! Введите положительное число: ",
	RetryPartCoeff:   "Ошибка! Введите число от 0.1 до 1.0: ",
	RetryCaseType:    "Ошибка! Введите уголовное, административное или гражданское: ",
	TooManyAttempts:  "Ошибка: превышено число попыток ввода. Расчет отменен.",
	ResultHeader:     "--- РЕЗУЛЬТАТЫ ---",
	ResultReward:     "Размер вознаграждения: %s",
	ResultPercent:    "Процент от суммы (расчетный): %s",
	ResultFooter:     "------------------",
	CategoryLine:     "Категория дела: %s",
	CoefficientLine:  "Коэф. значимости: %s, Участие: %s",

	SelfTestHeader:     "--- ЗАПУСК АВТОМАТИЧЕСКИХ ТЕСТОВ ---",
	SelfTestFooter:     "------------------------------------",
	SelfTestPassed:     "%s: ПРОЙДЕН",
	SelfTestFailedWant: "%s: ПРОВАЛЕН (Ожидалось %s, получено %s)",
	SelfTestFailedGot:  "%s: ПРОВАЛЕН (Получено %s)",
	SelfTestCriminal:   "Тест 1 (Уголовное)",
	SelfTestMinimum:    "Тест 2 (Минимум 5000)",
	SelfTestMaximum:    "Тест 3 (Максимум 1млн)",
}

var printer *message.Printer

func init() {
	for key, msg := range table {
		if err := message.SetString(Lang, key, msg); err != nil {
			panic("messages: failed to register " + key + ": " + err.Error())
		}
	}
	printer = message.NewPrinter(Lang)
}

// Get returns the message for key formatted with args.
func Get(key string, args ...interface{}) string {
	return printer.Sprintf(key, args...)
}
