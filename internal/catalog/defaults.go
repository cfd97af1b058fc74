package catalog

import "work_exchange/internal/db/models"

// DefaultTexts seed the texts table and back any slug the admin panel has not defined yet.
var DefaultTexts = []*models.Text{
	{Slug: "choose_option", Rus: "Выберите, что вы ищете", Heb: "בחר מה אתה מחפש"},
	{Slug: "choose_menu_section", Rus: "Выберите раздел меню", Heb: "בחר קטע בתפריט"},
	{Slug: "input_cancel", Rus: "Ввод отменён", Heb: "הקלט בוטל"},
	{Slug: "error", Rus: "Произошла ошибка, повторите попытку еще раз", Heb: "אירעה שגיאה, נסה שוב"},
	{Slug: "role_locked", Rus: "Вы уже зарегистрированы в другой роли", Heb: "כבר נרשמת בתפקיד אחר"},
	{Slug: "input_name", Rus: "Как вас зовут?", Heb: "מה שמך?"},
	{Slug: "input_phone", Rus: "Отправьте номер телефона или нажмите кнопку ниже", Heb: "שלח את מספר הטלפון שלך או לחץ על הכפתור למטה"},
	{Slug: "wrong_phone", Rus: "Неверный номер телефона, попробуйте еще раз", Heb: "מספר טלפון שגוי, נסה שוב"},
	{Slug: "input_passport_photo", Rus: "Отправьте фото паспорта или удостоверения личности", Heb: "שלח צילום דרכון או תעודת זהות"},
	{Slug: "choose_occupations", Rus: "Выберите специальности и нажмите «Подтвердить»", Heb: "בחר מקצועות ולחץ על «אשר»"},
	{Slug: "occupations_required", Rus: "Выберите хотя бы одну специальность", Heb: "בחר לפחות מקצוע אחד"},
	{Slug: "input_about", Rus: "Расскажите о себе и своем опыте", Heb: "ספר על עצמך ועל הניסיון שלך"},
	{Slug: "input_min_salary", Rus: "Укажите минимальную оплату в час, ₪", Heb: "ציין שכר מינימלי לשעה, ₪"},
	{Slug: "wrong_salary", Rus: "Введите целое положительное число", Heb: "הזן מספר שלם חיובי"},
	{Slug: "object_photos_question", Rus: "Добавьте фото ваших объектов (до 9) или перейдите к следующему шагу", Heb: "הוסף תמונות של העבודות שלך (עד 9) או עבור לשלב הבא"},
	{Slug: "input_object_photo", Rus: "Отправьте фото объекта", Heb: "שלח תמונה של העבודה"},
	{Slug: "object_photos_limit", Rus: "Добавлено максимальное количество фото", Heb: "נוסף מספר התמונות המרבי"},
	{Slug: "worker_notifications_question", Rus: "Получать уведомления о подходящих вакансиях?", Heb: "לקבל התראות על משרות מתאימות?"},
	{Slug: "job_notifications_question", Rus: "Получать уведомления о подходящих работниках?", Heb: "לקבל התראות על עובדים מתאימים?"},
	{Slug: "confirm_data", Rus: "Проверьте данные и подтвердите", Heb: "בדוק את הנתונים ואשר"},
	{Slug: "worker_cv_sent", Rus: "Резюме отправлено на проверку", Heb: "קורות החיים נשלחו לבדיקה"},
	{Slug: "worker_cv_approved", Rus: "Ваше резюме одобрено и опубликовано", Heb: "קורות החיים שלך אושרו"},
	{Slug: "worker_cv_declined", Rus: "Ваше резюме отклонено. Пожалуйста, заполните его заново", Heb: "קורות החיים שלך נדחו"},
	{Slug: "worker_wait_check", Rus: "Ваше резюме еще на проверке", Heb: "קורות החיים שלך עדיין בבדיקה"},
	{Slug: "worker_check_failed", Rus: "Ваше резюме не прошло проверку", Heb: "קורות החיים שלך לא עברו בדיקה"},
	{Slug: "worker_profile_error", Rus: "Сначала заполните резюме", Heb: "מלא קודם את קורות החיים"},
	{Slug: "saved", Rus: "Сохранено", Heb: "נשמר"},
	{Slug: "your_profile", Rus: "Ваш профиль", Heb: "הפרופיל שלך"},
	{Slug: "name", Rus: "Имя:", Heb: "שם:"},
	{Slug: "phone", Rus: "Телефон:", Heb: "טלפון:"},
	{Slug: "occupations", Rus: "Специальности:", Heb: "מקצועות:"},
	{Slug: "about", Rus: "О себе:", Heb: "על עצמי:"},
	{Slug: "description", Rus: "Описание:", Heb: "תיאור:"},
	{Slug: "min_salary", Rus: "Минимальная оплата:", Heb: "שכר מינימלי:"},
	{Slug: "salary_hourly", Rus: "₪/час", Heb: "₪/שעה"},
	{Slug: "object_photos", Rus: "Фото объектов:", Heb: "תמונות עבודות:"},
	{Slug: "notifications", Rus: "Уведомления:", Heb: "התראות:"},
	{Slug: "searching", Rus: "Ищу работу:", Heb: "מחפש עבודה:"},
	{Slug: "active", Rus: "Активна:", Heb: "פעילה:"},
	{Slug: "status", Rus: "Статус:", Heb: "סטטוס:"},
	{Slug: "rating", Rus: "Рейтинг:", Heb: "דירוג:"},
	{Slug: "rate", Rus: "Оценка:", Heb: "ציון:"},
	{Slug: "review", Rus: "Отзыв:", Heb: "חוות דעת:"},
	{Slug: "employer", Rus: "Работодатель:", Heb: "מעסיק:"},
	{Slug: "worker", Rus: "Работник:", Heb: "עובד:"},
	{Slug: "job", Rus: "Вакансия:", Heb: "משרה:"},
	{Slug: "updated_at", Rus: "Обновлено:", Heb: "עודכן:"},
	{Slug: "no_rating", Rus: "нет оценок", Heb: "אין דירוג"},
	{Slug: "yes", Rus: "да", Heb: "כן"},
	{Slug: "no", Rus: "нет", Heb: "לא"},
	{Slug: "status_pending", Rus: "на проверке", Heb: "בבדיקה"},
	{Slug: "status_approved", Rus: "одобрено", Heb: "אושר"},
	{Slug: "status_declined", Rus: "отклонено", Heb: "נדחה"},
	{Slug: "status_accepted", Rus: "принято", Heb: "התקבל"},
	{Slug: "input_job_description", Rus: "Опишите вакансию", Heb: "תאר את המשרה"},
	{Slug: "job_sent", Rus: "Вакансия отправлена на проверку", Heb: "המשרה נשלחה לבדיקה"},
	{Slug: "job_approved", Rus: "Ваша вакансия одобрена", Heb: "המשרה שלך אושרה"},
	{Slug: "job_declined", Rus: "Ваша вакансия отклонена", Heb: "המשרה שלך נדחתה"},
	{Slug: "new_worker", Rus: "Новый работник", Heb: "עובד חדש"},
	{Slug: "new_job", Rus: "Новая вакансия", Heb: "משרה חדשה"},
	{Slug: "nothing_found", Rus: "Ничего не найдено", Heb: "לא נמצא דבר"},
	{Slug: "proposal_sent", Rus: "Предложение отправлено", Heb: "ההצעה נשלחה"},
	{Slug: "proposal_exists", Rus: "Вы уже отправляли предложение", Heb: "כבר שלחת הצעה"},
	{Slug: "proposal_unavailable", Rus: "Объявление сейчас недоступно, предложение отклонено", Heb: "המודעה אינה זמינה כעת, ההצעה נדחתה"},
	{Slug: "proposal_new", Rus: "Новое предложение сотрудничества", Heb: "הצעה חדשה לשיתוף פעולה"},
	{Slug: "proposal_accepted", Rus: "Ваше предложение принято", Heb: "ההצעה שלך התקבלה"},
	{Slug: "proposal_declined", Rus: "Ваше предложение отклонено", Heb: "ההצעה שלך נדחתה"},
	{Slug: "proposal_answered", Rus: "Ответ отправлен", Heb: "התשובה נשלחה"},
	{Slug: "proposal_not_allowed", Rus: "Это действие недоступно", Heb: "פעולה זו אינה זמינה"},
	{Slug: "review_input_rate", Rus: "Оцените от 1 до 5", Heb: "דרג מ-1 עד 5"},
	{Slug: "review_input_comment", Rus: "Напишите отзыв или пропустите этот шаг", Heb: "כתוב חוות דעת או דלג על שלב זה"},
	{Slug: "review_sent", Rus: "Отзыв отправлен на проверку", Heb: "חוות הדעת נשלחה לבדיקה"},
	{Slug: "review_exists", Rus: "Вы уже оставляли отзыв", Heb: "כבר השארת חוות דעת"},
	{Slug: "review_approved", Rus: "Ваш отзыв опубликован", Heb: "חוות הדעת שלך פורסמה"},
	{Slug: "review_declined", Rus: "Ваш отзыв отклонен", Heb: "חוות הדעת שלך נדחתה"},
	{Slug: "review_new", Rus: "О вас оставили новый отзыв", Heb: "התקבלה עליך חוות דעת חדשה"},
	{Slug: "comment", Rus: "Комментарий:", Heb: "הערה:"},
	{Slug: "created_at", Rus: "Создано:", Heb: "נוצר:"},
	{Slug: "inbox_proposal", Rus: "Входящее предложение", Heb: "הצעה נכנסת"},
	{Slug: "outbox_proposal", Rus: "Исходящее предложение", Heb: "הצעה יוצאת"},
	{Slug: "new_worker_interesting", Rus: "Новый работник, который может вас заинтересовать", Heb: "עובד חדש שעשוי לעניין אותך"},
	{Slug: "new_job_interesting", Rus: "Новая вакансия, которая может вас заинтересовать", Heb: "משרה חדשה שעשויה לעניין אותך"},
	{Slug: "choose_jobs_section", Rus: "Выберите список вакансий", Heb: "בחר רשימת משרות"},
	{Slug: "choose_workers_section", Rus: "Выберите список работников", Heb: "בחר רשימת עובדים"},
	{Slug: "choose_proposals_section", Rus: "Предложения сотрудничества", Heb: "הצעות לשיתוף פעולה"},
	{Slug: "choose_reviews_section", Rus: "Отзывы", Heb: "חוות דעת"},
	{Slug: "already_decided", Rus: "Решение уже принято", Heb: "ההחלטה כבר התקבלה"},
	{Slug: "not_found", Rus: "Не найдено", Heb: "לא נמצא"},
	{Slug: "employer_phone_saved", Rus: "Номер телефона сохранен", Heb: "מספר הטלפון נשמר"},
	{Slug: "wrong_rate", Rus: "Выберите оценку от 1 до 5", Heb: "בחר ציון מ-1 עד 5"},
	{Slug: "wrong_input", Rus: "Пожалуйста, используйте кнопки или отправьте то, что запрошено", Heb: "אנא השתמש בכפתורים או שלח את המבוקש"},
	{Slug: "profile_waiting", Rus: "Ваша анкета еще на проверке, раздел пока недоступен", Heb: "הפרופיל שלך עדיין בבדיקה"},
}

var DefaultButtons = []*models.Button{
	{Slug: "search_job", Rus: "Ищу работу", Heb: "אני מחפש עבודה"},
	{Slug: "search_workers", Rus: "Ищу сотрудников", Heb: "אני מחפש עובדים"},
	{Slug: "yes", Rus: "Да", Heb: "כן"},
	{Slug: "no", Rus: "Нет", Heb: "לא"},
	{Slug: "confirm", Rus: "Подтвердить", Heb: "אשר"},
	{Slug: "cancel", Rus: "Отменить", Heb: "בטל"},
	{Slug: "skip", Rus: "Пропустить", Heb: "דלג"},
	{Slug: "request_phone", Rus: "Предоставить номер 📱", Heb: "ספק מספר 📱"},
	{Slug: "add_photo", Rus: "Добавить фото", Heb: "הוסף תמונה"},
	{Slug: "next_step", Rus: "К следующему шагу", Heb: "לשלב הבא"},
	{Slug: "retype", Rus: "Ввести заново", Heb: "הזן מחדש"},
	{Slug: "change_cv", Rus: "Изменить резюме", Heb: "שנה קורות חיים"},
	{Slug: "enable_notifications", Rus: "Включить уведомления", Heb: "הפעל התראות"},
	{Slug: "disable_notifications", Rus: "Отключить уведомления", Heb: "כבה התראות"},
	{Slug: "searching_yes", Rus: "Установить \"ищу работу\"", Heb: "סמן \"מחפש עבודה\""},
	{Slug: "searching_no", Rus: "Установить \"не ищу работу\"", Heb: "סמן \"לא מחפש עבודה\""},
	{Slug: "main_menu", Rus: "Главное меню 🏠", Heb: "תפריט ראשי 🏠"},
	{Slug: "change_data", Rus: "Изменить данные", Heb: "שנה את מספר הטלפון"},
	{Slug: "back", Rus: "⬅️ Назад", Heb: "⬅️ חזרה"},
	{Slug: "cooperation_proposals", Rus: "Предложения сотрудничества", Heb: "הצעות לשיתוף פעולה"},
	{Slug: "inbox", Rus: "📩 Входящие", Heb: "📩 דואר נכנס"},
	{Slug: "outbox", Rus: "📤 Исходящие", Heb: "📤 דואר יוצא"},
	{Slug: "jobs", Rus: "Вакансии", Heb: "משרות פנויות"},
	{Slug: "my_jobs", Rus: "Мои вакансии", Heb: "המשרות שלי"},
	{Slug: "all_jobs", Rus: "Все вакансии", Heb: "הכל"},
	{Slug: "jobs_suitable", Rus: "Подходящие вакансии", Heb: "משרות מתאימות"},
	{Slug: "jobs_active", Rus: "✅ Активные", Heb: "✅ פעיל"},
	{Slug: "jobs_archive", Rus: "🗄 Архив", Heb: "🗄 ארכיון"},
	{Slug: "jobs_declined", Rus: "❌ Отклоненные", Heb: "❌ נדחו"},
	{Slug: "job_create", Rus: "➕ Добавить вакансию", Heb: "➕ הוסף משרה פנויה"},
	{Slug: "profile", Rus: "👤 Профиль", Heb: "👤 פרופיל"},
	{Slug: "reviews", Rus: "💬 Отзывы", Heb: "💬 חוות דעת"},
	{Slug: "workers", Rus: "Работники", Heb: "עובדים"},
	{Slug: "workers_all", Rus: "Все работники", Heb: "כל העובדים"},
	{Slug: "workers_suitable", Rus: "Подходящие работники", Heb: "עובדים מתאימים"},
	{Slug: "activate", Rus: "Активировать", Heb: "הפעל"},
	{Slug: "deactivate", Rus: "Деактивировать", Heb: "השבת"},
	{Slug: "make_proposal", Rus: "Предложить сотрудничество", Heb: "הצע שיתוף פעולה"},
	{Slug: "resend_proposal", Rus: "Предложить повторно", Heb: "הצע שוב"},
	{Slug: "accept", Rus: "✅ Принять", Heb: "✅ קבל"},
	{Slug: "decline", Rus: "❌ Отклонить", Heb: "❌ דחה"},
	{Slug: "add_review", Rus: "💬 Оставить отзыв", Heb: "💬 השאר חוות דעת"},
	{Slug: "more_workers", Rus: "Больше работников", Heb: "עובדים נוספים"},
	{Slug: "more_jobs", Rus: "Больше вакансий", Heb: "משרות נוספות"},
	{Slug: "details", Rus: "Подробнее", Heb: "פרטים"},
	{Slug: "change_phone", Rus: "Изменить номер", Heb: "שנה מספר"},
}

var DefaultOccupations = []*models.Occupation{
	{Slug: "concrete", Rus: "Бетонщик", Heb: "עובד בטון"},
	{Slug: "armature", Rus: "Арматурщик", Heb: "עובד זיון"},
	{Slug: "painter", Rus: "Маляр", Heb: "צַבָּע"},
	{Slug: "plaster", Rus: "Штукатурщик", Heb: "טייח"},
	{Slug: "tile", Rus: "Плиточник", Heb: "רַצָף"},
	{Slug: "plasterboard", Rus: "Гипсокартонщик", Heb: "עובד גבס"},
	{Slug: "welding", Rus: "Сварщик", Heb: "רתך"},
	{Slug: "electricity", Rus: "Электрик", Heb: "חשמלאי"},
}

func init() {
	for i, text := range DefaultTexts {
		text.Position = i
	}
	for i, button := range DefaultButtons {
		button.Position = i
	}
	for i, occupation := range DefaultOccupations {
		occupation.Position = i
	}
}
