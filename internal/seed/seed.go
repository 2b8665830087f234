// Package seed holds the collections used when a store has no saved value yet.
package seed

import "github.com/mmynk/housepoints/internal/models"

// Houses returns the four founding houses.
func Houses() []models.House {
	return []models.House{
		{ID: "st", Name: "Casa Santa Terezinha", Color: "#ef4444", Icon: "🌹"},
		{ID: "sf", Name: "Casa São Francisco", Color: "#8b4513", Icon: "🐾"},
		{ID: "sa", Name: "Casa Santo Agostinho", Color: "#3b82f6", Icon: "📖"},
		{ID: "sr", Name: "Casa Santa Rita", Color: "#a855f7", Icon: "🐝"},
	}
}

// Categories returns the default quick actions: three credits, three debits.
func Categories() []models.Category {
	return []models.Category{
		{ID: "task-complete", Label: "Tarefa Completa", DefaultPoints: 10},
		{ID: "participation", Label: "Participação em Aula", DefaultPoints: 5},
		{ID: "cleaning", Label: "Ajuda na Limpeza", DefaultPoints: 15},
		{ID: "delay", Label: "Atraso", DefaultPoints: -5},
		{ID: "uniform", Label: "Uniforme Incompleto", DefaultPoints: -5},
		{ID: "behavior", Label: "Mau Comportamento", DefaultPoints: -10},
	}
}

// Events returns the initial point log, which is empty.
func Events() []models.PointEvent {
	return []models.PointEvent{}
}

// Users returns the initial staff directory.
//
// Passwords are plaintext; when bcrypt credentials are enabled the server
// hashes them before the directory is first saved.
func Users() []models.User {
	return []models.User{
		{ID: "u1", Name: "Administrador Geral", Email: "admin@escola.com", Role: models.RoleAdmin, Password: "123"},
		{ID: "u2", Name: "Rui Palomares", Email: "rui.palomares@hisbsb.pro.br", Role: models.RoleAdmin, Password: "123"},
		{ID: "u3", Name: "Coordenação Pedagógica", Email: "coordenador@escola.com", Role: models.RoleCoordinator, Password: "123"},

		{ID: "c1", Name: "Ms. Talita Costa", Email: "talita.spindola@hisbsb.com.br", Role: models.RoleCoordinator, Password: "talita.spindola48"},
		{ID: "c2", Name: "Ms. Berta Biondi", Email: "berta.biondi@hisbsb.com.br", Role: models.RoleCoordinator, Password: "berta.biondi72"},
		{ID: "c3", Name: "Mr. Carlos Alberto", Email: "carlos.teles@hisbsb.com.br", Role: models.RoleCoordinator, Password: "carlos.teles16"},

		{ID: "t1", Name: "Ms. Ávanny Dalmaschio", Email: "avanny.buzaid@hisbsb.pro.br", Role: models.RoleTeacher, Password: "avanny.buzaid42"},
		{ID: "t2", Name: "Mr. Cadu Nerosky", Email: "carlos.nerosky@hisbsb.g12.br", Role: models.RoleTeacher, Password: "carlos.nerosky87"},
		{ID: "t3", Name: "Ms. Débora Rodrigues", Email: "debora.rodrigues@hisbsb.pro.br", Role: models.RoleTeacher, Password: "debora.rodrigues15"},
		{ID: "t4", Name: "Mr. Caio Silvestre", Email: "caio.melo@hisbsb.pro.br", Role: models.RoleTeacher, Password: "caio.melo63"},
		{ID: "t5", Name: "Ms. Giovanna Otero", Email: "giovanna.otero@hisbsb.com.br", Role: models.RoleTeacher, Password: "giovanna.otero29"},
		{ID: "t6", Name: "Ms. Jéssica Germano", Email: "jessica.germano@hisbsb.pro.br", Role: models.RoleTeacher, Password: "jessica.germano74"},
		{ID: "t7", Name: "Mr. Jota", Email: "jose.junior@hisbsb.com.br", Role: models.RoleTeacher, Password: "jose.junior51"},
		{ID: "t8", Name: "Ms. Lídice Rodrigues", Email: "lidice.martins@hisbsb.pro.br", Role: models.RoleTeacher, Password: "lidice.martins36"},
		{ID: "t9", Name: "Ms. Maíra Oliveira", Email: "maira.cordeiro@hisbsb.pro.br", Role: models.RoleTeacher, Password: "maira.cordeiro92"},
		{ID: "t10", Name: "Ms. Duda Freitas", Email: "maria.freitas@hisbsb.pro.br", Role: models.RoleTeacher, Password: "maria.freitas18"},
		{ID: "t11", Name: "Mr. Matheus Batista", Email: "matheus.machado@hisbsb.pro.br", Role: models.RoleTeacher, Password: "matheus.machado55"},
		{ID: "t12", Name: "Mr. Nathan Simoes", Email: "nathan.castro@hisbsb.pro.br", Role: models.RoleTeacher, Password: "nathan.castro70"},
		{ID: "t13", Name: "Mr. Octávio Augusto", Email: "octavio.ribeiro@hisbsb.pro.br", Role: models.RoleTeacher, Password: "octavio.ribeiro23"},
		{ID: "t14", Name: "Mr. Olavo Carvalho", Email: "olavo.neves@hisbsb.pro.br", Role: models.RoleTeacher, Password: "olavo.neves81"},
		{ID: "t15", Name: "Ms. Patricia Alonso", Email: "patricia.alonso@hisbsb.pro.br", Role: models.RoleTeacher, Password: "patricia.alonso47"},
		{ID: "t16", Name: "Mr. Rodolfo Araya", Email: "rodolfo.araya@hisbsb.pro.br", Role: models.RoleTeacher, Password: "rodolfo.araya66"},
		{ID: "t17", Name: "Ms. Sarah Isidório", Email: "sarah.isidorio@hisbsb.pro.br", Role: models.RoleTeacher, Password: "sarah.isidorio12"},
		{ID: "t18", Name: "Mr. Sidnei Félix", Email: "sidnei.felix@hisbsb.pro.br", Role: models.RoleTeacher, Password: "sidnei.felix39"},
		{ID: "t19", Name: "Ms. Tatiane Luiza da Silva", Email: "tatiane.silva@hisbsb.pro.br", Role: models.RoleTeacher, Password: "tatiane.silva84"},
		{ID: "t20", Name: "Mr. Marlon Florencio", Email: "marlon.florencio@hisbsb.pro.br", Role: models.RoleTeacher, Password: "marlon.florencio27"},
		{ID: "t21", Name: "Mr. Galileu Henrique", Email: "galileu.henrique@hisbsb.pro.br", Role: models.RoleTeacher, Password: "galileu.henrique58"},
		{ID: "t22", Name: "Ms. Raquel Santos", Email: "raquel.bracarense@hisbsb.pro.br", Role: models.RoleTeacher, Password: "raquel.bracarense31"},
		{ID: "t23", Name: "Mr. Hudá Augusto", Email: "huda.cardoso@hisbsb.pro.br", Role: models.RoleTeacher, Password: "huda.cardoso95"},
	}
}
