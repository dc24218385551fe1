package i18n

// catalogs holds the per-language message tables. Russian is the complete
// reference catalog; missing keys in other languages fall back to it.
var catalogs = map[string]map[string]string{
	"ru": {
		"language.choose":     "Выберите язык:",
		"language.options.ru": "🇷🇺 Русский",
		"language.options.uz": "🇺🇿 O'zbekcha",
		"language.options.en": "🇬🇧 English",
		"language.saved":      "Язык сохранён: %s",

		"registration.required":       "Чтобы пользоваться ботом, нужно зарегистрироваться.",
		"registration.button":         "📱 Зарегистрироваться",
		"registration.share_contact":  "Отправьте свой номер телефона кнопкой ниже.",
		"registration.contact_button": "📱 Отправить номер",
		"registration.foreign_contact": "Это чужой контакт. Отправьте, пожалуйста, свой собственный номер.",
		"registration.success":        "Регистрация завершена! Добро пожаловать в Finora 🎉",
		"registration.phone_in_use":   "Этот номер уже привязан к другому аккаунту.",
		"registration.invalid_phone":  "Номер телефона не распознан. Попробуйте ещё раз.",
		"registration.failed":         "Не удалось завершить регистрацию. Попробуйте позже.",

		"error.unavailable": "Сервис временно недоступен. Попробуйте позже.",
		"error.rejected":    "Сервис отклонил запрос. Начните заново.",

		"common.back":      "⬅️ Назад",
		"common.cancel":    "❌ Отмена",
		"common.confirm":   "✅ Подтвердить",
		"common.skip":      "⏭ Пропустить",
		"common.cancelled": "Действие отменено.",

		"menu.title":    "🏠 Главное меню",
		"menu.greeting": "Привет, %s!",
		"menu.expense":  "➖ Расход",
		"menu.income":   "➕ Доход",
		"menu.today":    "📊 Сегодня",
		"menu.budget":   "💰 Бюджет",
		"menu.goals":    "🎯 Цели",
		"menu.progress": "📈 Прогресс",
		"menu.insights": "💡 Инсайты",
		"menu.smart":    "🤖 Умное накопление",
		"menu.settings": "⚙️ Настройки",

		"txn.amount.expense":     "Введите сумму расхода:",
		"txn.amount.income":      "Введите сумму дохода:",
		"txn.amount.invalid":     "Не удалось разобрать сумму. Введите целое число, например 50000.",
		"txn.category":           "Выберите категорию:",
		"txn.description":        "Добавьте описание или пропустите этот шаг.",
		"txn.date":               "Выберите дату записи:",
		"txn.date.today":         "📅 Сегодня",
		"txn.date.manual":        "✏️ Другая дата",
		"txn.date.manual_prompt": "Введите дату в формате ГГГГ-ММ-ДД:",
		"txn.date.invalid":       "Дата не распознана. Формат: ГГГГ-ММ-ДД, например 2026-03-15.",
		"txn.confirm.title":      "Проверьте запись",
		"txn.confirm.amount":     "Сумма: %s",
		"txn.confirm.category":   "Категория: %s",
		"txn.confirm.description": "Описание: %s",
		"txn.confirm.date":       "Дата: %s",
		"txn.saved.expense":      "✅ Расход сохранён.",
		"txn.saved.income":       "✅ Доход сохранён.",

		"category.food":          "🍔 Еда",
		"category.transport":     "🚕 Транспорт",
		"category.shopping":      "🛍 Покупки",
		"category.health":        "💊 Здоровье",
		"category.entertainment": "🎮 Развлечения",
		"category.utilities":     "🏠 Коммуналка",
		"category.other":         "📦 Другое",

		"income.salary":   "💼 Зарплата",
		"income.business": "📈 Бизнес",
		"income.gift":     "🎁 Подарок",
		"income.other":    "📦 Другое",

		"goal.title_prompt":           "Введите название цели:",
		"goal.amount_prompt":          "Введите целевую сумму:",
		"goal.icon_prompt":            "Выберите иконку или пропустите шаг.",
		"goal.deadline_prompt":        "К какому сроку хотите накопить?",
		"goal.deadline.months":        "%d мес.",
		"goal.deadline.none":          "Без срока",
		"goal.deadline.manual":        "✏️ Своя дата",
		"goal.deadline.manual_prompt": "Введите срок в формате ГГГГ-ММ-ДД:",
		"goal.created":                "🎯 Цель «%s» создана!",
		"goal.list.title":             "🎯 Ваши цели",
		"goal.list.empty":             "Пока нет ни одной цели. Создайте первую!",
		"goal.new":                    "➕ Новая цель",
		"goal.detail.target":          "Цель: %s",
		"goal.detail.saved":           "Накоплено: %s (%d%%)",
		"goal.detail.deadline":        "Срок: %s",
		"goal.detail.primary":         "⭐ Основная цель",
		"goal.deposit":                "💵 Пополнить",
		"goal.set_primary":            "⭐ Сделать основной",
		"goal.close":                  "🔒 Закрыть",
		"goal.reopen":                 "🔓 Открыть снова",
		"goal.analyze":                "🔍 Анализ",
		"goal.closed":                 "Цель закрыта.",
		"goal.reopened":               "Цель снова открыта.",
		"goal.primary_set":            "⭐ Основная цель обновлена.",
		"goal.analysis.title":         "🔍 Анализ цели",
		"goal.analysis.empty":         "Пока недостаточно данных для анализа.",

		"deposit.amount_prompt": "Сколько отложить в «%s»?",
		"deposit.confirm":       "Отложить %s в «%s»?",
		"deposit.done":          "✅ Готово! В «%s» добавлено %s.",

		"smart.none":     "Пока нечего предложить: свободного остатка нет.",
		"smart.proposal": "💡 Могу отложить %s в «%s». Подтвердить?",

		"today.title":   "📊 Сегодня",
		"today.income":  "Доходы: %s",
		"today.expense": "Расходы: %s",
		"today.balance": "Баланс: %s",
		"today.empty":   "Сегодня записей ещё нет.",

		"budget.title": "💰 Бюджет на месяц",
		"budget.limit": "Лимит: %s",
		"budget.spent": "Потрачено: %s",
		"budget.left":  "Осталось: %s",
		"budget.daily": "На день: %s",

		"progress.title": "📈 Прогресс целей",
		"progress.empty": "Целей пока нет — нечего показывать.",

		"insights.title":   "💡 Инсайты",
		"insights.week":    "📅 Неделя",
		"insights.trend":   "📈 Тренд",
		"insights.savings": "💰 Накопления",
		"insights.tip":     "💡 Совет",
		"insights.empty":   "Недостаточно данных. Возвращайтесь позже!",

		"settings.title":      "⚙️ Настройки",
		"settings.language":   "🌐 Язык",
		"settings.clear_chat": "🗑 Очистить чат",

		"chat.cleared": "🗑 Чат очищен!\n\nTelegram не позволяет удалять сообщения пользователя, поэтому очищены только сообщения бота.",

		"onboarding.welcome": "Добро пожаловать в Finora — бот для учёта финансов и накоплений.",

		"tour.welcome":      "Добро пожаловать в Finora",
		"tour.welcome_body": "Я помогу вести финансы спокойно и системно.\nНебольшая настройка займёт меньше минуты.",
		"tour.begin":        "Начать",
		"tour.skip":         "Пропустить",
		"tour.focus":        "С чего начнём?",
		"tour.focus_body":   "Выбери главный фокус на сегодня.",
		"tour.focus_save":   "🎯 Копить на цель",
		"tour.focus_track":  "📌 Контроль расходов",
		"tour.goal_save":    "Давай зафиксируем первую цель",
		"tour.goal_track":   "Можно создать цель и для контроля",
		"tour.goal_body":    "Цель помогает держать фокус и видеть прогресс.",
		"tour.goal_create":  "🎯 Создать цель",
		"tour.income":       "Добавим первую операцию",
		"tour.income_body":  "Это поможет сразу увидеть реальную картину.",
		"tour.income_add":   "💰 Добавить доход",
		"tour.expense_add":  "💸 Добавить расход",
		"tour.later":        "Позже",
		"tour.summary":      "Сегодняшняя сводка",
	},

	"en": {
		"language.choose":     "Choose a language:",
		"language.options.ru": "🇷🇺 Русский",
		"language.options.uz": "🇺🇿 O'zbekcha",
		"language.options.en": "🇬🇧 English",
		"language.saved":      "Language saved: %s",

		"registration.required":       "You need to register before using the bot.",
		"registration.button":         "📱 Register",
		"registration.share_contact":  "Share your phone number with the button below.",
		"registration.contact_button": "📱 Share number",
		"registration.foreign_contact": "That contact belongs to someone else. Please share your own number.",
		"registration.success":        "Registration complete! Welcome to Finora 🎉",
		"registration.phone_in_use":   "This number is already linked to another account.",
		"registration.invalid_phone":  "That phone number was not recognized. Please try again.",
		"registration.failed":         "Registration failed. Please try again later.",

		"error.unavailable": "The service is temporarily unavailable. Please try again later.",
		"error.rejected":    "The service rejected the request. Please start over.",

		"common.back":      "⬅️ Back",
		"common.cancel":    "❌ Cancel",
		"common.confirm":   "✅ Confirm",
		"common.skip":      "⏭ Skip",
		"common.cancelled": "Cancelled.",

		"menu.title":    "🏠 Main menu",
		"menu.greeting": "Hi, %s!",
		"menu.expense":  "➖ Expense",
		"menu.income":   "➕ Income",
		"menu.today":    "📊 Today",
		"menu.budget":   "💰 Budget",
		"menu.goals":    "🎯 Goals",
		"menu.progress": "📈 Progress",
		"menu.insights": "💡 Insights",
		"menu.smart":    "🤖 Smart save",
		"menu.settings": "⚙️ Settings",

		"txn.amount.expense":      "Enter the expense amount:",
		"txn.amount.income":       "Enter the income amount:",
		"txn.amount.invalid":      "Could not parse the amount. Enter a whole number, e.g. 50000.",
		"txn.category":            "Pick a category:",
		"txn.description":         "Add a description or skip this step.",
		"txn.date":                "Pick the record date:",
		"txn.date.today":          "📅 Today",
		"txn.date.manual":         "✏️ Another date",
		"txn.date.manual_prompt":  "Enter the date as YYYY-MM-DD:",
		"txn.date.invalid":        "Date not recognized. Format: YYYY-MM-DD, e.g. 2026-03-15.",
		"txn.confirm.title":       "Review the record",
		"txn.confirm.amount":      "Amount: %s",
		"txn.confirm.category":    "Category: %s",
		"txn.confirm.description": "Description: %s",
		"txn.confirm.date":        "Date: %s",
		"txn.saved.expense":       "✅ Expense saved.",
		"txn.saved.income":        "✅ Income saved.",

		"category.food":          "🍔 Food",
		"category.transport":     "🚕 Transport",
		"category.shopping":      "🛍 Shopping",
		"category.health":        "💊 Health",
		"category.entertainment": "🎮 Entertainment",
		"category.utilities":     "🏠 Utilities",
		"category.other":         "📦 Other",

		"income.salary":   "💼 Salary",
		"income.business": "📈 Business",
		"income.gift":     "🎁 Gift",
		"income.other":    "📦 Other",

		"goal.title_prompt":           "Enter the goal title:",
		"goal.amount_prompt":          "Enter the target amount:",
		"goal.icon_prompt":            "Pick an icon or skip this step.",
		"goal.deadline_prompt":        "By when do you want to reach it?",
		"goal.deadline.months":        "%d mo.",
		"goal.deadline.none":          "No deadline",
		"goal.deadline.manual":        "✏️ Custom date",
		"goal.deadline.manual_prompt": "Enter the deadline as YYYY-MM-DD:",
		"goal.created":                "🎯 Goal \"%s\" created!",
		"goal.list.title":             "🎯 Your goals",
		"goal.list.empty":             "No goals yet. Create your first one!",
		"goal.new":                    "➕ New goal",
		"goal.detail.target":          "Target: %s",
		"goal.detail.saved":           "Saved: %s (%d%%)",
		"goal.detail.deadline":        "Deadline: %s",
		"goal.detail.primary":         "⭐ Primary goal",
		"goal.deposit":                "💵 Deposit",
		"goal.set_primary":            "⭐ Make primary",
		"goal.close":                  "🔒 Close",
		"goal.reopen":                 "🔓 Reopen",
		"goal.analyze":                "🔍 Analyze",
		"goal.closed":                 "Goal closed.",
		"goal.reopened":               "Goal reopened.",
		"goal.primary_set":            "⭐ Primary goal updated.",
		"goal.analysis.title":         "🔍 Goal analysis",
		"goal.analysis.empty":         "Not enough data to analyze yet.",

		"deposit.amount_prompt": "How much to put into \"%s\"?",
		"deposit.confirm":       "Put %s into \"%s\"?",
		"deposit.done":          "✅ Done! \"%s\" topped up with %s.",

		"smart.none":     "Nothing to suggest yet: no free balance.",
		"smart.proposal": "💡 I can put %s into \"%s\". Confirm?",

		"today.title":   "📊 Today",
		"today.income":  "Income: %s",
		"today.expense": "Expenses: %s",
		"today.balance": "Balance: %s",
		"today.empty":   "No records today yet.",

		"budget.title": "💰 Monthly budget",
		"budget.limit": "Limit: %s",
		"budget.spent": "Spent: %s",
		"budget.left":  "Left: %s",
		"budget.daily": "Per day: %s",

		"progress.title": "📈 Goal progress",
		"progress.empty": "No goals yet — nothing to show.",

		"insights.title":   "💡 Insights",
		"insights.week":    "📅 Week",
		"insights.trend":   "📈 Trend",
		"insights.savings": "💰 Savings",
		"insights.tip":     "💡 Tip",
		"insights.empty":   "Not enough data yet. Come back later!",

		"settings.title":      "⚙️ Settings",
		"settings.language":   "🌐 Language",
		"settings.clear_chat": "🗑 Clear chat",

		"chat.cleared": "🗑 Chat cleared!\n\nTelegram does not allow deleting the user's messages, so only the bot's messages were removed.",

		"onboarding.welcome": "Welcome to Finora — a bot for tracking money and building savings.",

		"tour.welcome":      "Welcome to Finora",
		"tour.welcome_body": "I will help you run your money calmly and consistently.\nA quick setup takes under a minute.",
		"tour.begin":        "Let's go",
		"tour.skip":         "Skip",
		"tour.focus":        "Where do we start?",
		"tour.focus_body":   "Pick your main focus for today.",
		"tour.focus_save":   "🎯 Save for a goal",
		"tour.focus_track":  "📌 Track spending",
		"tour.goal_save":    "Let's lock in your first goal",
		"tour.goal_track":   "A goal helps with tracking too",
		"tour.goal_body":    "A goal keeps the focus and shows progress.",
		"tour.goal_create":  "🎯 Create a goal",
		"tour.income":       "Let's add a first operation",
		"tour.income_body":  "It makes the real picture visible right away.",
		"tour.income_add":   "💰 Add income",
		"tour.expense_add":  "💸 Add expense",
		"tour.later":        "Later",
		"tour.summary":      "Today's summary",
	},

	"uz": {
		"language.choose":     "Tilni tanlang:",
		"language.options.ru": "🇷🇺 Русский",
		"language.options.uz": "🇺🇿 O'zbekcha",
		"language.options.en": "🇬🇧 English",
		"language.saved":      "Til saqlandi: %s",

		"registration.required":       "Botdan foydalanish uchun ro'yxatdan o'ting.",
		"registration.button":         "📱 Ro'yxatdan o'tish",
		"registration.share_contact":  "Quyidagi tugma orqali telefon raqamingizni yuboring.",
		"registration.contact_button": "📱 Raqamni yuborish",
		"registration.foreign_contact": "Bu boshqa odamning kontakti. Iltimos, o'z raqamingizni yuboring.",
		"registration.success":        "Ro'yxatdan o'tish yakunlandi! Finora'ga xush kelibsiz 🎉",
		"registration.phone_in_use":   "Bu raqam boshqa hisobga bog'langan.",
		"registration.invalid_phone":  "Telefon raqami aniqlanmadi. Qaytadan urinib ko'ring.",
		"registration.failed":         "Ro'yxatdan o'tib bo'lmadi. Keyinroq urinib ko'ring.",

		"error.unavailable": "Xizmat vaqtincha ishlamayapti. Keyinroq urinib ko'ring.",
		"error.rejected":    "Xizmat so'rovni rad etdi. Qaytadan boshlang.",

		"common.back":      "⬅️ Orqaga",
		"common.cancel":    "❌ Bekor qilish",
		"common.confirm":   "✅ Tasdiqlash",
		"common.skip":      "⏭ O'tkazib yuborish",
		"common.cancelled": "Bekor qilindi.",

		"menu.title":    "🏠 Asosiy menyu",
		"menu.greeting": "Salom, %s!",
		"menu.expense":  "➖ Xarajat",
		"menu.income":   "➕ Daromad",
		"menu.today":    "📊 Bugun",
		"menu.budget":   "💰 Byudjet",
		"menu.goals":    "🎯 Maqsadlar",
		"menu.progress": "📈 Taraqqiyot",
		"menu.insights": "💡 Tahlillar",
		"menu.smart":    "🤖 Aqlli jamg'arma",
		"menu.settings": "⚙️ Sozlamalar",

		"txn.amount.expense": "Xarajat summasini kiriting:",
		"txn.amount.income":  "Daromad summasini kiriting:",
		"txn.amount.invalid": "Summani o'qib bo'lmadi. Butun son kiriting, masalan 50000.",
		"txn.category":       "Toifani tanlang:",
		"txn.description":    "Izoh qo'shing yoki bu qadamni o'tkazib yuboring.",
		"txn.date":           "Yozuv sanasini tanlang:",
		"txn.date.today":     "📅 Bugun",
		"txn.date.manual":    "✏️ Boshqa sana",
		"txn.saved.expense":  "✅ Xarajat saqlandi.",
		"txn.saved.income":   "✅ Daromad saqlandi.",

		"category.food":      "🍔 Ovqat",
		"category.transport": "🚕 Transport",
		"category.other":     "📦 Boshqa",

		"income.salary": "💼 Maosh",
		"income.other":  "📦 Boshqa",

		"goal.list.title": "🎯 Maqsadlaringiz",
		"goal.list.empty": "Hali maqsadlar yo'q. Birinchisini yarating!",
		"goal.new":        "➕ Yangi maqsad",

		"settings.title":    "⚙️ Sozlamalar",
		"settings.language": "🌐 Til",
	},
}
