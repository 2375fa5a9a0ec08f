package migrate

import (
	"log"

	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) {
	log.Println("Starting migrations...")

	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		phone VARCHAR(15) UNIQUE NOT NULL,
		email VARCHAR(100) UNIQUE,
		full_name VARCHAR(100) NOT NULL,
		password VARCHAR(255),
		role VARCHAR(20) DEFAULT 'user' CHECK (role IN ('admin', 'lawyer', 'user', 'collaborator')),
		is_active BOOLEAN DEFAULT true,
		is_phone_verified BOOLEAN DEFAULT false,
		is_email_verified BOOLEAN DEFAULT false,
		avatar VARCHAR(255),
		address TEXT,
		date_of_birth DATE,
		gender VARCHAR(10),
		is_online BOOLEAN DEFAULT false,
		last_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMP,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS otp_verification (
		id SERIAL PRIMARY KEY,
		phone VARCHAR(15) NOT NULL,
		otp_code VARCHAR(6) NOT NULL,
		purpose VARCHAR(50) NOT NULL,
		is_used BOOLEAN DEFAULT false,
		expires_at TIMESTAMP NOT NULL,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS admin_management (
		id SERIAL PRIMARY KEY,
		admin_id INTEGER REFERENCES users(id),
		action_type VARCHAR(50) NOT NULL,
		target_user_id INTEGER REFERENCES users(id),
		details JSONB,
		ip_address VARCHAR(45),
		user_agent TEXT,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS video_life_law (
		id SERIAL PRIMARY KEY,
		type VARCHAR(50) NOT NULL,
		title VARCHAR(200) NOT NULL,
		video VARCHAR(500) NOT NULL,
		description TEXT,
		thumbnail VARCHAR(500),
		duration INTEGER DEFAULT 0,
		view_count INTEGER DEFAULT 0,
		like_count INTEGER DEFAULT 0,
		dislike_count INTEGER DEFAULT 0,
		hashtags TEXT[],
		age_group VARCHAR(50),
		created_by INTEGER REFERENCES users(id),
		is_featured BOOLEAN DEFAULT false,
		is_approved BOOLEAN DEFAULT false,
		is_active BOOLEAN DEFAULT true,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS video_likes (
		id SERIAL PRIMARY KEY,
		video_id INTEGER REFERENCES video_life_law(id) ON DELETE CASCADE,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		action_type VARCHAR(10) NOT NULL CHECK (action_type IN ('like', 'dislike')),
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(video_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS video_comments (
		id SERIAL PRIMARY KEY,
		video_id INTEGER REFERENCES video_life_law(id) ON DELETE CASCADE,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		parent_id INTEGER REFERENCES video_comments(id) ON DELETE CASCADE,
		like_count INTEGER DEFAULT 0,
		is_active BOOLEAN DEFAULT true,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS video_comment_likes (
		id SERIAL PRIMARY KEY,
		comment_id INTEGER REFERENCES video_comments(id) ON DELETE CASCADE,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(comment_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS legal_knowledge (
		id SERIAL PRIMARY KEY,
		title VARCHAR(300) NOT NULL,
		image VARCHAR(500),
		summary TEXT,
		category VARCHAR(50) NOT NULL,
		author VARCHAR(100) NOT NULL,
		status VARCHAR(20) DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'archived')),
		view_count INTEGER DEFAULT 0,
		like_count INTEGER DEFAULT 0,
		created_by INTEGER REFERENCES users(id),
		is_featured BOOLEAN DEFAULT false,
		is_approved BOOLEAN DEFAULT false,
		is_active BOOLEAN DEFAULT true,
		content TEXT NOT NULL,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS legal_documents (
		id SERIAL PRIMARY KEY,
		title VARCHAR(300) NOT NULL,
		document_number VARCHAR(100) UNIQUE NOT NULL,
		document_type VARCHAR(50) NOT NULL,
		issuing_authority VARCHAR(200) NOT NULL,
		issued_date DATE,
		effective_date DATE,
		expiry_date DATE,
		status VARCHAR(50) NOT NULL DEFAULT 'chua_xac_dinh',
		tags TEXT[],
		file_url VARCHAR(500),
		file_size INTEGER DEFAULT 0,
		download_count INTEGER DEFAULT 0,
		uploaded_by INTEGER REFERENCES users(id),
		is_important BOOLEAN DEFAULT false,
		is_approved BOOLEAN DEFAULT false,
		is_active BOOLEAN DEFAULT true,
		html_content TEXT,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS legal_fields (
		id SERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		slug VARCHAR(200) UNIQUE NOT NULL,
		description TEXT,
		icon VARCHAR(100),
		color VARCHAR(20) DEFAULT '#3B82F6',
		sort_order INTEGER DEFAULT 0,
		created_by INTEGER REFERENCES users(id),
		is_approved BOOLEAN DEFAULT false,
		is_active BOOLEAN DEFAULT true,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS legal_news (
		id SERIAL PRIMARY KEY,
		title VARCHAR(300) NOT NULL,
		content TEXT NOT NULL,
		description TEXT,
		image TEXT,
		view_count INTEGER DEFAULT 0,
		status VARCHAR(20) DEFAULT 'pending',
		tags TEXT[],
		author_id INTEGER REFERENCES users(id),
		is_approved BOOLEAN DEFAULT false,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS category (
		id SERIAL PRIMARY KEY,
		value VARCHAR(100) UNIQUE NOT NULL,
		label VARCHAR(255) NOT NULL,
		description TEXT,
		is_approved BOOLEAN DEFAULT false,
		is_active BOOLEAN DEFAULT true,
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS conversations (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		lawyer_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(255),
		status VARCHAR(20) DEFAULT 'active' CHECK (status IN ('active', 'closed', 'archived')),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id SERIAL PRIMARY KEY,
		conversation_id INTEGER NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		sender_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		message_type VARCHAR(20) DEFAULT 'text' CHECK (message_type IN ('text', 'file', 'image')),
		file_url VARCHAR(500),
		file_name VARCHAR(255),
		file_size INTEGER,
		is_read BOOLEAN DEFAULT false,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS site_content (
		id SERIAL PRIMARY KEY,
		content_key VARCHAR(50) UNIQUE NOT NULL CHECK (content_key IN ('about', 'contact')),
		content JSONB NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		updated_by VARCHAR(255),
		ts_create TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		ts_update TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_users_phone ON users(phone);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);
	CREATE INDEX IF NOT EXISTS idx_users_active ON users(is_active);

	CREATE INDEX IF NOT EXISTS idx_otp_phone ON otp_verification(phone);
	CREATE INDEX IF NOT EXISTS idx_otp_expires ON otp_verification(expires_at);

	CREATE INDEX IF NOT EXISTS idx_admin_action ON admin_management(action_type);
	CREATE INDEX IF NOT EXISTS idx_admin_admin_id ON admin_management(admin_id);

	CREATE INDEX IF NOT EXISTS idx_video_type ON video_life_law(type);
	CREATE INDEX IF NOT EXISTS idx_video_active ON video_life_law(is_active);
	CREATE INDEX IF NOT EXISTS idx_video_approved ON video_life_law(is_approved);
	CREATE INDEX IF NOT EXISTS idx_video_hashtags ON video_life_law USING GIN(hashtags);

	CREATE INDEX IF NOT EXISTS idx_video_likes_video_id ON video_likes(video_id);
	CREATE INDEX IF NOT EXISTS idx_video_likes_user_id ON video_likes(user_id);
	CREATE INDEX IF NOT EXISTS idx_video_comments_video_id ON video_comments(video_id);
	CREATE INDEX IF NOT EXISTS idx_video_comments_parent_id ON video_comments(parent_id);
	CREATE INDEX IF NOT EXISTS idx_video_comment_likes_comment_id ON video_comment_likes(comment_id);

	CREATE INDEX IF NOT EXISTS idx_knowledge_category ON legal_knowledge(category);
	CREATE INDEX IF NOT EXISTS idx_knowledge_active ON legal_knowledge(is_active);
	CREATE INDEX IF NOT EXISTS idx_knowledge_status ON legal_knowledge(status);
	CREATE INDEX IF NOT EXISTS idx_knowledge_approved ON legal_knowledge(is_approved);
	CREATE INDEX IF NOT EXISTS idx_knowledge_created_by ON legal_knowledge(created_by);

	CREATE INDEX IF NOT EXISTS idx_documents_number ON legal_documents(document_number);
	CREATE INDEX IF NOT EXISTS idx_documents_active ON legal_documents(is_active);
	CREATE INDEX IF NOT EXISTS idx_documents_approved ON legal_documents(is_approved);
	CREATE INDEX IF NOT EXISTS idx_documents_status ON legal_documents(status);
	CREATE INDEX IF NOT EXISTS idx_documents_type ON legal_documents(document_type);
	CREATE INDEX IF NOT EXISTS idx_documents_effective ON legal_documents(effective_date);

	CREATE INDEX IF NOT EXISTS idx_fields_slug ON legal_fields(slug);
	CREATE INDEX IF NOT EXISTS idx_fields_active ON legal_fields(is_active);
	CREATE INDEX IF NOT EXISTS idx_fields_sort ON legal_fields(sort_order);

	CREATE INDEX IF NOT EXISTS idx_news_status ON legal_news(status);
	CREATE INDEX IF NOT EXISTS idx_news_approved ON legal_news(is_approved);
	CREATE INDEX IF NOT EXISTS idx_news_author ON legal_news(author_id);

	CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id);
	CREATE INDEX IF NOT EXISTS idx_conversations_lawyer ON conversations(lawyer_id);
	CREATE INDEX IF NOT EXISTS idx_chat_messages_conversation ON chat_messages(conversation_id);
	CREATE INDEX IF NOT EXISTS idx_chat_messages_unread ON chat_messages(conversation_id, is_read);

	CREATE INDEX IF NOT EXISTS idx_site_content_key ON site_content(content_key);
	`

	if _, err := db.Exec(query); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}
