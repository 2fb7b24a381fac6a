package bot

// Fixed operator-facing strings. The bot serves a single admin, so there is
// no localization layer.
const (
	textNotAdmin = "Вибачте, цей бот тільки для адміністратора."

	textHelp = "⛷ Вас вітає SkiShopAdmin!\n\n" +
		"Команди:\n" +
		"/add - Додати новий товар\n" +
		"/all - Показати всі товари\n" +
		"/cancel - Скасувати поточну дію"

	textCanceled = "❌ Дію скасовано."

	textChooseCategory  = "Вибери категорію товару:"
	textUnknownCategory = "Не впізнаю категорію. Обери кнопкою нижче 👇"
	photoPromptFmt      = "Обрано: %s. Тепер скидай фото.\nКоли закінчиш — натисни кнопку нижче 👇"

	textPhotoAddedFmt  = "📸 Фото №%d додано! Скидай ще або напиши 'стоп'."
	textNeedPhoto      = "Потрібно хоча б одне фото!"
	textPhotosAccepted = "✅ Фото прийняті. Тепер напиши назву (бренд та модель):"

	textSizeSkis  = "📏 Яка довжина лиж у см?"
	textSizeBoots = "📏 Який розмір черевиків (EU)?"

	textAskDescription = "📝 Додай короткий опис (стан, дефекти, кріплення):"
	textAskPrice       = "💰 Вкажи ціну (тільки цифри, в грн):"
	textNumberError    = "Будь ласка, введи коректну ціну цифрами."

	textConfirm = "Все правильно?"

	textCommitOK         = "🎉 Товар успішно додано до каталогу!"
	textCommitPartialFmt = "⚠️ Товар додано, але завантажено лише %d з %d фото."
	textCommitNoUploads  = "❌ Не вдалося завантажити жодного фото. Спробуйте ще раз."
	textCommitAborted    = "Скасовано. Спробуй ще раз через /add"
	textPersistFailed    = "⛔️ Не вдалося зберегти товар. Спробуй ще раз через /add"
	textListFailed       = "⛔️ Не вдалося отримати список товарів."

	stopButton = "🛑 СТОП (фото завантажені)"
	btnYes     = "✅ Так"
	btnNo      = "❌ Ні, заново"
)
