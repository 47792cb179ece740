package course

import "manuscrito/models"

var modules = []models.Module{
	{
		ID: 1, DayNumber: 1,
		Title:          "El Código de la Fe",
		Subtitle:       "Primer Sello",
		Icon:           "✨",
		Quote:          "Es, pues, la fe la certeza de lo que se espera, la convicción de lo que no se ve.",
		QuoteReference: "Hebreos 11:1",
		Explanation:    "La fe no es un sentimiento pasajero sino una **certeza**. El primer sello abre la puerta a todos los demás: sin fe, ninguna verdad puede echar raíz en el corazón.",
		Application:    "Escribe hoy una promesa que todavía no ves cumplida. Léela en voz alta por la mañana y por la noche, dando gracias como si ya fuera una realidad.",
		Affirmation:    "Camino por fe y no por vista. Lo que espero ya tiene sustancia en mi espíritu.",
	},
	{
		ID: 2, DayNumber: 2,
		Title:          "El Código del Perdón",
		Subtitle:       "Segundo Sello",
		Icon:           "🕊️",
		Quote:          "Antes sed benignos unos con otros, misericordiosos, perdonándoos unos a otros, como Dios también os perdonó a vosotros en Cristo.",
		QuoteReference: "Efesios 4:32",
		Explanation:    "El perdón rompe las cadenas que atan el alma al pasado. Perdonar no justifica la ofensa: te libera a ti del peso de cargarla.",
		Application:    "Piensa en una persona a la que te cuesta perdonar. Escribe su nombre y, en oración, entrégala a Dios. Repite el ejercicio hasta que el recuerdo ya no tenga poder sobre ti.",
		Affirmation:    "Soy libre porque he sido perdonado, y perdono porque soy libre.",
	},
	{
		ID: 3, DayNumber: 3,
		Title:          "El Código de la Identidad",
		Subtitle:       "Tercer Sello",
		Icon:           "👑",
		Quote:          "De modo que si alguno está en Cristo, nueva criatura es; las cosas viejas pasaron; he aquí todas son hechas nuevas.",
		QuoteReference: "2 Corintios 5:17",
		Explanation:    "Tu identidad no la definen tus errores ni las palabras de otros. El tercer sello revela quién eres *realmente*: una nueva creación.",
		Application:    "Haz una lista de las etiquetas que has aceptado sobre ti mismo. Junto a cada una, escribe lo que Dios dice de ti.",
		Affirmation:    "Soy una nueva criatura. Lo viejo pasó y todo en mí es hecho nuevo.",
	},
	{
		ID: 4, DayNumber: 4,
		Title:          "El Código de la Palabra",
		Subtitle:       "Cuarto Sello",
		Icon:           "📜",
		Quote:          "Lámpara es a mis pies tu palabra, y lumbrera a mi camino.",
		QuoteReference: "Salmos 119:105",
		Explanation:    "La Palabra ilumina el siguiente paso, no todo el camino. Quien la medita cada día nunca camina a oscuras.",
		Application:    "Elige un versículo y medítalo durante todo el día. Anota lo que te revela en tres momentos distintos: mañana, tarde y noche.",
		Affirmation:    "La Palabra es luz en mi camino. Cada paso que doy está iluminado.",
	},
	{
		ID: 5, DayNumber: 5,
		Title:          "El Código de la Oración",
		Subtitle:       "Quinto Sello",
		Icon:           "🙏",
		Quote:          "Por nada estéis afanosos, sino sean conocidas vuestras peticiones delante de Dios en toda oración y ruego, con acción de gracias.",
		QuoteReference: "Filipenses 4:6",
		Explanation:    "La oración cambia primero al que ora. El quinto sello transforma la ansiedad en conversación y la preocupación en gratitud.",
		Application:    "Dedica quince minutos a orar sin pedir nada: solo agradece. Después presenta tus peticiones y observa cómo cambia tu corazón.",
		Affirmation:    "No vivo en afán. Mis peticiones son conocidas y mi corazón descansa.",
	},
	{
		ID: 6, DayNumber: 6,
		Title:          "El Código de la Provisión",
		Subtitle:       "Sexto Sello",
		Icon:           "🌾",
		Quote:          "Mi Dios, pues, suplirá todo lo que os falta conforme a sus riquezas en gloria en Cristo Jesús.",
		QuoteReference: "Filipenses 4:19",
		Explanation:    "La provisión no depende de las circunstancias sino de la fuente. Quien conoce la fuente deja de temer a la escasez.",
		Application:    "Enumera cinco provisiones que recibiste este año sin haberlas planeado. Comparte una de ellas con alguien que lo necesite.",
		Affirmation:    "Nada me falta. Mi provisión viene de una fuente que no se agota.",
	},
	{
		ID: 7, DayNumber: 7,
		Title:          "El Código de la Sanidad",
		Subtitle:       "Séptimo Sello",
		Icon:           "💧",
		Quote:          "Mas él herido fue por nuestras rebeliones, molido por nuestros pecados; el castigo de nuestra paz fue sobre él, y por su llaga fuimos nosotros curados.",
		QuoteReference: "Isaías 53:5",
		Explanation:    "La sanidad alcanza cuerpo, alma y espíritu. El séptimo sello invita a recibir lo que ya fue pagado.",
		Application:    "Identifica un área de tu vida que necesita sanidad. Ora por ella cada día de esta semana y registra cualquier cambio que notes.",
		Affirmation:    "Por sus llagas he sido sanado. La paz gobierna mi cuerpo y mi alma.",
	},
	{
		ID: 8, DayNumber: 8,
		Title:          "El Código de la Autoridad",
		Subtitle:       "Octavo Sello",
		Icon:           "⚔️",
		Quote:          "He aquí os doy potestad de hollar serpientes y escorpiones, y sobre toda fuerza del enemigo, y nada os dañará.",
		QuoteReference: "Lucas 10:19",
		Explanation:    "La autoridad espiritual no se gana: se recibe y se ejerce. El octavo sello te enseña a hablar desde tu posición y no desde tu temor.",
		Application:    "Escribe tres situaciones en las que te has sentido sin poder. Declara sobre cada una la autoridad que has recibido.",
		Affirmation:    "Tengo autoridad sobre toda fuerza contraria. Nada me dañará.",
	},
	{
		ID: 9, DayNumber: 9,
		Title:          "El Código del Propósito",
		Subtitle:       "Noveno Sello",
		Icon:           "🧭",
		Quote:          "Porque yo sé los pensamientos que tengo acerca de vosotros, dice Jehová, pensamientos de paz, y no de mal, para daros el fin que esperáis.",
		QuoteReference: "Jeremías 29:11",
		Explanation:    "No existes por accidente. El noveno sello conecta tus dones, tu historia y tus anhelos con un propósito mayor.",
		Application:    "Responde por escrito: ¿qué te apasiona, qué te duele del mundo y qué sabes hacer bien? Busca el punto donde las tres respuestas se encuentran.",
		Affirmation:    "Mi vida tiene propósito. Mis pasos están ordenados hacia un buen fin.",
	},
	{
		ID: 10, DayNumber: 10,
		Title:          "El Código de la Comunidad",
		Subtitle:       "Décimo Sello",
		Icon:           "🤝",
		Quote:          "Y si alguno prevaleciere contra uno, dos le resistirán; y cordón de tres dobleces no se rompe pronto.",
		QuoteReference: "Eclesiastés 4:12",
		Explanation:    "Nadie fue creado para caminar solo. El décimo sello revela la fuerza que nace cuando compartimos la fe.",
		Application:    "Contacta hoy a dos personas para orar juntos o simplemente escucharlas. Comprométete a repetirlo una vez por semana.",
		Affirmation:    "No camino solo. Soy parte de un cordón que no se rompe.",
	},
	{
		ID: 11, DayNumber: 11,
		Title:          "El Código de la Perseverancia",
		Subtitle:       "Undécimo Sello",
		Icon:           "⛰️",
		Quote:          "No nos cansemos, pues, de hacer bien; porque a su tiempo segaremos, si no desmayamos.",
		QuoteReference: "Gálatas 6:9",
		Explanation:    "La cosecha llega a su tiempo, no al nuestro. El undécimo sello fortalece al que está a punto de rendirse.",
		Application:    "Retoma algo bueno que abandonaste. Define un paso pequeño y cúmplelo cada día durante los próximos siete días.",
		Affirmation:    "No desmayo. A su tiempo veré la cosecha de lo que siembro hoy.",
	},
	{
		ID: 12, DayNumber: 12,
		Title:          "El Código de la Activación",
		Subtitle:       "Duodécimo Sello",
		Icon:           "🔥",
		Quote:          "Levántate, resplandece; porque ha venido tu luz, y la gloria de Jehová ha nacido sobre ti.",
		QuoteReference: "Isaías 60:1",
		Explanation:    "El último sello no es un final sino un comienzo. Todo lo recibido en los once sellos anteriores se **activa** para ser compartido.",
		Application:    "Escribe una carta a ti mismo resumiendo lo que cada sello despertó en ti. Elige una persona con quien compartir este camino.",
		Affirmation:    "Me levanto y resplandezco. La luz que recibí ahora brilla a través de mí.",
	},
}
