package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyPrevious           = "previous"
	KeyNext               = "next"
	KeyPageOf             = "page_of"
	KeyLoading            = "loading"
	KeyRetry              = "retry"
	KeyFetchFailed        = "fetch_failed"
	KeyRenderFault        = "render_fault"
	KeyTryAgain           = "try_again"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyHelp               = "help"
	KeyLanguage           = "language"
	KeyAPIDocs            = "api_docs"
	KeyInjectFault        = "inject_fault"
	KeyRememberPage       = "remember_page"
	KeySendCrashReports   = "send_crash_reports"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyInterfaceSettings  = "interface_settings"
	KeyPrivacySettings    = "privacy_settings"
	KeyRestartForReports  = "restart_for_reports"
	KeyErrorOpeningDocs   = "error_opening_docs"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Episode Browser",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyPageOf:            "Page %d / %d",
		KeyLoading:           "Loading episodes...",
		KeyRetry:             "Retry",
		KeyFetchFailed:       "Failed to load episodes",
		KeyRenderFault:       "Something went wrong while rendering this view",
		KeyTryAgain:          "Try again",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyHelp:              "Help",
		KeyLanguage:          "Language",
		KeyAPIDocs:           "API Documentation",
		KeyInjectFault:       "Inject render fault",
		KeyRememberPage:      "Remember last viewed page",
		KeySendCrashReports:  "Send crash reports",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInterfaceSettings: "Interface Settings",
		KeyPrivacySettings:   "Privacy Settings",
		KeyRestartForReports: "Crash report changes take effect after restart",
		KeyErrorOpeningDocs:  "Error opening documentation",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Браузер эпизодов",
		KeyPrevious:          "Назад",
		KeyNext:              "Вперёд",
		KeyPageOf:            "Страница %d / %d",
		KeyLoading:           "Загрузка эпизодов...",
		KeyRetry:             "Повторить",
		KeyFetchFailed:       "Не удалось загрузить эпизоды",
		KeyRenderFault:       "Что-то пошло не так при отображении этого экрана",
		KeyTryAgain:          "Попробовать снова",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyHelp:              "Справка",
		KeyLanguage:          "Язык",
		KeyAPIDocs:           "Документация API",
		KeyInjectFault:       "Вызвать сбой отрисовки",
		KeyRememberPage:      "Запоминать последнюю страницу",
		KeySendCrashReports:  "Отправлять отчёты о сбоях",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeyPrivacySettings:   "Настройки приватности",
		KeyRestartForReports: "Изменение отчётов о сбоях вступит в силу после перезапуска",
		KeyErrorOpeningDocs:  "Ошибка открытия документации",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Navegador de Episódios",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próxima",
		KeyPageOf:            "Página %d / %d",
		KeyLoading:           "Carregando episódios...",
		KeyRetry:             "Tentar novamente",
		KeyFetchFailed:       "Falha ao carregar episódios",
		KeyRenderFault:       "Algo deu errado ao renderizar esta tela",
		KeyTryAgain:          "Tentar de novo",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyHelp:              "Ajuda",
		KeyLanguage:          "Idioma",
		KeyAPIDocs:           "Documentação da API",
		KeyInjectFault:       "Injetar falha de renderização",
		KeyRememberPage:      "Lembrar última página vista",
		KeySendCrashReports:  "Enviar relatórios de falhas",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInterfaceSettings: "Configurações de Interface",
		KeyPrivacySettings:   "Configurações de Privacidade",
		KeyRestartForReports: "Mudanças nos relatórios de falhas valem após reiniciar",
		KeyErrorOpeningDocs:  "Erro ao abrir a documentação",
	}
}
